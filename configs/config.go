// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package config loads and validates the build manifest: which output
passes to run, where the id table and translation catalogs live, and
the resource entries making up the tree.
*/
package config

import "fmt"

// Config is the top-level build manifest.
type Config struct {
	// BaseDir anchors relative source-file references.
	BaseDir string `yaml:"base_dir"`

	// SourceLang is the language the resource texts are written in.
	SourceLang string `yaml:"source_lang"`

	// IDTable is the path of the YAML id table, empty when no header
	// or pack output is produced.
	IDTable string `yaml:"id_table"`

	// CatalogDir holds the <locale>.po translation catalogs.
	CatalogDir string `yaml:"catalog_dir"`

	Log Log `yaml:"log"`

	Outputs []Output `yaml:"outputs"`

	Resources Resources `yaml:"resources"`
}

// Log configures diagnostic output.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Output describes one artifact to produce.
type Output struct {
	Kind     string `yaml:"kind"`
	Lang     string `yaml:"lang"`
	Filename string `yaml:"filename"`

	// LanguagePolicy selects the preamble's LANGUAGE section:
	// "neutral" (default), "language", or "omit".
	LanguagePolicy string `yaml:"language_policy"`
}

// Resources lists the tree entries by kind.
type Resources struct {
	Messages   []Message   `yaml:"messages"`
	Structures []Structure `yaml:"structures"`
	Includes   []Include   `yaml:"includes"`
}

// Message is one translatable string entry.
type Message struct {
	Name        string `yaml:"name"`
	Text        string `yaml:"text"`
	SubVariable bool   `yaml:"sub_variable"`
}

// Structure is one gathered or file-based structure entry.
type Structure struct {
	Name            string `yaml:"name"`
	Type            string `yaml:"type"`
	File            string `yaml:"file"`
	ExcludeFromRc   bool   `yaml:"exclude_from_rc"`
	ExpandVariables bool   `yaml:"expand_variables"`
	FlattenHTML     bool   `yaml:"flattenhtml"`
}

// Include is one binary include entry.
type Include struct {
	Name                string `yaml:"name"`
	Type                string `yaml:"type"`
	File                string `yaml:"file"`
	FilenameOnly        bool   `yaml:"filenameonly"`
	RelativePath        bool   `yaml:"relativepath"`
	FlattenHTML         bool   `yaml:"flattenhtml"`
	AllowExternalScript bool   `yaml:"allowexternalscript"`
}

// Load reads, defaults and validates the manifest at path.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cfg.readYAML(path); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return cfg, nil
}
