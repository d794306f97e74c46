// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

/*
resgen compiles a resource tree described by a YAML manifest into
platform resource-script text and related artifacts.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/resgen/resgen/catalog"
	config "codeberg.org/resgen/resgen/configs"
	"codeberg.org/resgen/resgen/format"
	"codeberg.org/resgen/resgen/ids"
	"codeberg.org/resgen/resgen/node"
)

func main() {
	manifestPath := flag.String("c", "resgen.yaml", "build manifest")
	flag.Parse()

	// An ok default until the manifest's log config takes over.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*manifestPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load manifest")
	}

	cfg.SetupLogging()

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Build failed")
	}
}

func run(cfg *config.Config) error {
	root := buildTree(cfg)

	if cfg.CatalogDir != "" {
		cat, err := catalog.Load(cfg.CatalogDir)
		if err != nil {
			return err
		}

		root.SetTranslator(cat)
	}

	var table *ids.Table

	if cfg.IDTable != "" {
		var err error

		table, err = ids.Load(cfg.IDTable)
		if err != nil {
			return err
		}
	}

	for _, out := range cfg.Outputs {
		if err := runPass(root, out, table); err != nil {
			return fmt.Errorf("output %s (%s, %s): %w", out.Filename, out.Kind, out.Lang, err)
		}

		log.Info().
			Str("kind", out.Kind).
			Str("lang", out.Lang).
			Str("file", out.Filename).
			Msg("Wrote output")
	}

	return nil
}

// runPass renders one output descriptor and writes the artifact as a
// whole file.
func runPass(root *node.Root, out config.Output, table *ids.Table) error {
	outputDir := filepath.Dir(out.Filename)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	pass := &format.Pass{
		Kind:      format.OutputKind(out.Kind),
		Lang:      out.Lang,
		OutputDir: outputDir,
		Subst:     format.NewSubstituter(out.Lang),
	}

	if table != nil {
		pass.IDs = table
	}

	var buf bytes.Buffer
	if err := format.Process(root, pass, &buf); err != nil {
		return err
	}

	if err := os.WriteFile(out.Filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}

	return nil
}

// buildTree constructs the resource tree from the manifest entries.
// Document order is manifest order: structures, then messages, then
// includes, each under its grouping element.
func buildTree(cfg *config.Config) *node.Root {
	root := node.NewRoot(cfg.BaseDir, cfg.SourceLang)

	for _, out := range cfg.Outputs {
		root.AddOutput(node.OutputFile{
			Kind:     out.Kind,
			Lang:     out.Lang,
			Filename: out.Filename,
			Policy:   node.LanguagePolicy(out.LanguagePolicy),
		})
	}

	if len(cfg.Resources.Structures) > 0 {
		group := node.NewGroup(root, node.KindStructures, nil)

		for _, s := range cfg.Resources.Structures {
			st := node.ConstructStructure(group, s.Name, s.Type, s.File)
			st.SetFlag("exclude_from_rc", s.ExcludeFromRc)
			st.SetFlag("expand_variables", s.ExpandVariables)
			st.SetFlag("flattenhtml", s.FlattenHTML)
		}
	}

	if len(cfg.Resources.Messages) > 0 {
		group := node.NewGroup(root, node.KindMessages, nil)

		for _, m := range cfg.Resources.Messages {
			node.ConstructMessage(group, m.Name, m.Text, m.SubVariable)
		}
	}

	if len(cfg.Resources.Includes) > 0 {
		group := node.NewGroup(root, node.KindIncludes, nil)

		for _, inc := range cfg.Resources.Includes {
			n := node.ConstructInclude(group, inc.Name, inc.Type, inc.File)
			n.SetFlag("filenameonly", inc.FilenameOnly)
			n.SetFlag("relativepath", inc.RelativePath)
			n.SetFlag("flattenhtml", inc.FlattenHTML)
			n.SetFlag("allowexternalscript", inc.AllowExternalScript)
		}
	}

	return root
}
