// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package node

import "path/filepath"

// LanguagePolicy selects how the preamble's LANGUAGE section is
// emitted for an output file.
type LanguagePolicy string

const (
	// PolicyNeutral emits LANG_NEUTRAL, SUBLANG_NEUTRAL. The default.
	PolicyNeutral LanguagePolicy = "neutral"

	// PolicyOmit suppresses the LANGUAGE section entirely, for rc
	// fragments meant to be #included from another file.
	PolicyOmit LanguagePolicy = "omit"

	// PolicyLanguage emits the language-specific directive from the
	// locale table.
	PolicyLanguage LanguagePolicy = "language"
)

// OutputFile describes one registered output of the tree: what kind of
// artifact, for which language, and where it goes.
type OutputFile struct {
	Kind     string
	Lang     string
	Filename string
	Policy   LanguagePolicy
}

// Root is the top of a resource tree. It owns the output-descriptor
// list, the base directory source paths resolve against, and the
// translation provider installed by the driver for the build.
type Root struct {
	base

	baseDir    string
	sourceLang string
	outputs    []OutputFile
	translator Translator
}

// NewRoot creates a tree root. baseDir anchors relative source paths;
// sourceLang is the language the tree's message texts are written in.
func NewRoot(baseDir, sourceLang string) *Root {
	r := &Root{baseDir: baseDir, sourceLang: sourceLang}
	r.setAttr("name", "")

	return r
}

func (r *Root) Kind() Kind { return KindRoot }

// BaseDir returns the directory relative source paths resolve against.
func (r *Root) BaseDir() string { return r.baseDir }

// SourceLang returns the language the tree's source texts are written in.
func (r *Root) SourceLang() string { return r.sourceLang }

// OutputFiles returns the registered output descriptors.
func (r *Root) OutputFiles() []OutputFile { return r.outputs }

// AddOutput registers an output descriptor on the root.
func (r *Root) AddOutput(out OutputFile) { r.outputs = append(r.outputs, out) }

// SetTranslator installs the translation provider used by message
// nodes for the rest of the build. A nil translator leaves messages
// untranslated.
func (r *Root) SetTranslator(t Translator) { r.translator = t }

// Translator returns the installed translation provider, or nil.
func (r *Root) Translator() Translator { return r.translator }

// ResolvePath turns a source-file reference into a real path, joining
// relative references onto the base directory.
func (r *Root) ResolvePath(file string) string {
	if filepath.IsAbs(file) {
		return file
	}

	return filepath.Join(r.baseDir, file)
}
