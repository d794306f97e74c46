// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/resgen/resgen/htmlinline"
	"codeberg.org/resgen/resgen/locale"
	"codeberg.org/resgen/resgen/node"
)

func init() {
	Register(node.KindRoot, RcAll, rcPreamble{})
	Register(node.KindMessages, RcAll, rcStringTable{})
	Register(node.KindMessage, RcAll, rcMessage{})
	Register(node.KindStructure, RcAll, rcStructure{})
	Register(node.KindInclude, RcAll, rcInclude{})
}

// escapeMessage prepares message text for embedding in a quoted rc
// string: every quote character is doubled and every line break (CR,
// LF or CRLF) becomes the literal two-character sequence \n.
func escapeMessage(text string) string {
	text = strings.ReplaceAll(text, `"`, `""`)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return strings.ReplaceAll(text, "\n", `\n`)
}

// escapePath doubles backslashes for embedding a filesystem path in a
// quoted rc line.
func escapePath(path string) string {
	return strings.ReplaceAll(path, `\`, `\\`)
}

// rcPreamble emits the fixed head of an rc file before any resource
// content: banner, header include, the IDC_STATIC guard, and the
// LANGUAGE section.
type rcPreamble struct{}

func (rcPreamble) Begin(n node.Node, p *Pass) (string, error) {
	root, ok := n.(*node.Root)
	if !ok {
		return "", fmt.Errorf("rc preamble on non-root node %s", n.Name())
	}

	var b strings.Builder

	fmt.Fprintf(&b, "// Copyright (c) Google Inc. %d\n", time.Now().Year())
	b.WriteString("// All rights reserved.\n")
	b.WriteString("// This file is automatically generated.  Do not edit.\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "#include \"%s\"\n", headerPath(root, p))
	b.WriteString("#include <winresrc.h>\n")
	b.WriteString("#ifdef IDC_STATIC\n")
	b.WriteString("#undef IDC_STATIC\n")
	b.WriteString("#endif\n")
	b.WriteString("#define IDC_STATIC (-1)\n")
	b.WriteString("\n")

	switch languagePolicy(root, p) {
	case node.PolicyOmit:
		// This output is meant to be #included from another rc file;
		// the including file owns the LANGUAGE section.
	case node.PolicyLanguage:
		fmt.Fprintf(&b, "LANGUAGE %s\n\n\n", locale.LangDirectivePair(p.Lang))
	default:
		fmt.Fprintf(&b, "LANGUAGE %s\n\n\n", locale.NeutralDirective)
	}

	return b.String(), nil
}

func (rcPreamble) Format(n node.Node, p *Pass) (string, error) { return "", nil }

// headerPath resolves the #include target for the preamble: the
// registered header output matching the pass language, expressed
// relative to the destination directory, defaulting to resource.h.
func headerPath(root *node.Root, p *Pass) string {
	for _, out := range root.OutputFiles() {
		if out.Kind != string(RcHeader) || out.Lang != p.Lang {
			continue
		}

		rel, err := filepath.Rel(p.OutputDir, out.Filename)
		if err != nil {
			rel = out.Filename
		}

		return escapePath(rel)
	}

	return "resource.h"
}

// languagePolicy picks the LANGUAGE-section policy from the output
// descriptor matching this pass, defaulting to the neutral directive.
func languagePolicy(root *node.Root, p *Pass) node.LanguagePolicy {
	for _, out := range root.OutputFiles() {
		if out.Kind == string(p.Kind) && out.Lang == p.Lang && out.Policy != "" {
			return out.Policy
		}
	}

	return node.PolicyNeutral
}

// rcStringTable wraps the messages of a group in a STRINGTABLE block.
type rcStringTable struct{}

func (rcStringTable) Begin(n node.Node, p *Pass) (string, error) {
	return "STRINGTABLE\nBEGIN\n", nil
}

func (rcStringTable) Format(n node.Node, p *Pass) (string, error) { return "", nil }

func (rcStringTable) End(n node.Node, p *Pass) (string, error) {
	return "END\n\n", nil
}

// rcMessage emits one string-table entry.
type rcMessage struct{}

func (rcMessage) Format(n node.Node, p *Pass) (string, error) {
	m, ok := n.(*node.Message)
	if !ok {
		return "", fmt.Errorf("rc message formatter on %s node %s", n.Kind(), n.Name())
	}

	text := escapeMessage(m.Translate(p.Lang))
	if m.ExpandVariables() {
		text = p.Subst.Apply(text)
	}

	return fmt.Sprintf("  %-15s \"%s\"\n", m.Name(), text), nil
}

// rcStructure emits a structure either as its gathered content block
// or, for file-based structures, as a reference line like an include.
type rcStructure struct{}

func (rcStructure) Format(n node.Node, p *Pass) (string, error) {
	s, ok := n.(*node.Structure)
	if !ok {
		return "", fmt.Errorf("rc structure formatter on %s node %s", n.Kind(), n.Name())
	}

	if s.BoolAttr("exclude_from_rc") {
		return "", nil
	}

	if g := s.Gatherer(); g != nil {
		fallback := false
		if parent := s.Parent(); parent != nil {
			fallback = parent.BoolAttr("fallback_to_english")
		}

		text, err := g.Translate(p.Lang, p.PseudoAllowed, fallback)
		if err != nil {
			return "", fmt.Errorf("structure %s: %w", s.Name(), err)
		}

		out := text + "\n\n"
		if s.BoolAttr("expand_variables") {
			out = p.Subst.Apply(out)
		}

		return out, nil
	}

	filename, err := structureFile(s, p)
	if err != nil {
		return "", err
	}

	typ := strings.ToUpper(s.Attr("type"))
	if typ == "TR_HTML" || typ == "CHROME_HTML" {
		typ = "HTML"
	}

	return fmt.Sprintf("%-18s %-18s \"%s\"\n", s.Name(), typ, escapePath(filename)), nil
}

// structureFile resolves the emitted file reference for a file-based
// structure, flattening it into the output directory when requested.
func structureFile(s *node.Structure, p *Pass) (string, error) {
	path, err := s.FileForLanguage(p.Lang, p.OutputDir)
	if err != nil {
		return "", err
	}

	if !s.BoolAttr("flattenhtml") {
		return path, nil
	}

	data, err := htmlinline.InlineToString(path, s.BoolAttr("allowexternalscript"))
	if err != nil {
		return "", fmt.Errorf("structure %s: flattening %s: %w", s.Name(), path, err)
	}

	flat := filepath.Join(p.OutputDir, s.Name()+"_"+filepath.Base(path))
	if err := os.WriteFile(flat, data, 0o644); err != nil {
		return "", fmt.Errorf("structure %s: writing %s: %w", s.Name(), flat, err)
	}

	return filepath.Base(flat), nil
}

// rcInclude emits the reference line for an include node, optionally
// flattening the file or rewriting the emitted path.
type rcInclude struct{}

func (rcInclude) Format(n node.Node, p *Pass) (string, error) {
	inc, ok := n.(*node.Include)
	if !ok {
		return "", fmt.Errorf("rc include formatter on %s node %s", n.Kind(), n.Name())
	}

	var (
		filename string
		err      error
	)

	switch {
	case inc.BoolAttr("flattenhtml"):
		filename, err = inc.Flatten(p.OutputDir)
	default:
		filename, err = inc.FileForLanguage(p.Lang, p.OutputDir)
		if err == nil {
			switch {
			case inc.BoolAttr("filenameonly"):
				filename = filepath.Base(filename)
			case inc.BoolAttr("relativepath"):
				if rel, relErr := filepath.Rel(p.OutputDir, filename); relErr == nil {
					filename = rel
				}
			}
		}
	}

	if err != nil {
		return "", err
	}

	typ := strings.ToUpper(inc.Attr("type"))

	return fmt.Sprintf("%-18s %-18s \"%s\"\n", inc.Name(), typ, escapePath(filename)), nil
}
