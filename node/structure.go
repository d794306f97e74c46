// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package node

import (
	"fmt"
	"os"
	"path/filepath"
)

// Gatherer extracts and localizes the content of a structure's source
// file. Implementations are format-specific (menu, dialog, version
// block, translated HTML) and live outside this package.
type Gatherer interface {
	// Translate returns the gathered content localized for lang.
	// pseudoAllowed permits pseudo-translation output; fallbackToEnglish
	// substitutes the source text when no translation exists.
	Translate(lang string, pseudoAllowed, fallbackToEnglish bool) (string, error)
}

// Structure is a leaf wrapping an externally gathered blob of
// localized text, such as a dialog, menu or version-info block, or a
// file-based resource whose content is emitted by reference.
type Structure struct {
	base

	gatherer Gatherer
}

// ConstructStructure creates a structure node under parent. typ is the
// rc resource type (e.g. "menu", "dialog", "tr_html"); file is the
// source file reference.
func ConstructStructure(parent Node, name, typ, file string) *Structure {
	s := &Structure{}
	s.setAttr("name", name)
	s.setAttr("type", typ)
	s.setAttr("file", file)
	s.setAttr("exclude_from_rc", "false")
	s.setAttr("expand_variables", "false")

	attach(parent, s, &s.base)

	return s
}

func (s *Structure) Kind() Kind { return KindStructure }

// SetGatherer installs the content gatherer for this structure.
func (s *Structure) SetGatherer(g Gatherer) { s.gatherer = g }

// Gatherer returns the installed content gatherer, or nil for
// file-based structures emitted by reference.
func (s *Structure) Gatherer() Gatherer { return s.gatherer }

// SetFlag sets a boolean attribute such as exclude_from_rc or
// expand_variables.
func (s *Structure) SetFlag(key string, v bool) { s.setAttr(key, BoolToString(v)) }

// FileForLanguage returns the file carrying this structure's content
// for lang. For the source language, or when no gatherer is installed,
// that is the resolved source file itself. For other languages the
// gathered translation is written to outputDir as <lang>_<basename>
// and that path is returned.
func (s *Structure) FileForLanguage(lang, outputDir string) (string, error) {
	r := RootOf(s)
	if r == nil {
		return "", fmt.Errorf("structure %s: detached from root", s.Name())
	}

	source := r.ResolvePath(s.Attr("file"))

	if s.gatherer == nil || lang == r.SourceLang() {
		return source, nil
	}

	text, err := s.gatherer.Translate(lang, false, true)
	if err != nil {
		return "", fmt.Errorf("structure %s: gathering %s content: %w", s.Name(), lang, err)
	}

	dest := filepath.Join(outputDir, lang+"_"+filepath.Base(source))
	if err := os.WriteFile(dest, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("structure %s: writing %s: %w", s.Name(), dest, err)
	}

	return dest, nil
}
