// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package node

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/resgen/resgen/htmlinline"
)

// Include is a leaf referencing an external file to be embedded as a
// binary resource.
//
// It owns the only core-mutable state in the tree: a computed-once
// cache of its flattened content, and the last destination path the
// flattened content was written to. Flattening the same node to the
// same destination twice performs exactly one filesystem write.
type Include struct {
	base

	// flattenedData caches the inlined content so the same file is
	// never flattened twice. Invalidated only by node destruction.
	flattenedData []byte
	flattened     bool

	// lastFlatFilename records the destination of the last on-disk
	// flatten, keying the idempotent-write guarantee.
	lastFlatFilename string
}

// ConstructInclude creates an include node under parent with the
// default flag set.
func ConstructInclude(parent Node, name, typ, file string) *Include {
	n := &Include{}
	n.setAttr("name", name)
	n.setAttr("type", typ)
	n.setAttr("file", file)
	n.setAttr("translateable", "true")
	n.setAttr("filenameonly", "false")
	n.setAttr("flattenhtml", "false")
	n.setAttr("allowexternalscript", "false")
	n.setAttr("relativepath", "false")

	attach(parent, n, &n.base)

	return n
}

func (n *Include) Kind() Kind { return KindInclude }

// SetFlag sets a boolean attribute such as flattenhtml or filenameonly.
func (n *Include) SetFlag(key string, v bool) { n.setAttr(key, BoolToString(v)) }

// FileForLanguage returns the source file for the given language.
// Includes are language-invariant, so this is always the resolved
// source path; the language parameter exists for interface symmetry
// with structures.
func (n *Include) FileForLanguage(lang, outputDir string) (string, error) {
	r := RootOf(n)
	if r == nil {
		return "", fmt.Errorf("include %s: detached from root", n.Name())
	}

	return r.ResolvePath(n.Attr("file")), nil
}

// FlattenedData returns the node's content with all referenced
// sub-resources inlined into one self-contained byte stream. The
// result is computed once and cached for the node's lifetime,
// independent of any destination path.
func (n *Include) FlattenedData(allowExternalScript bool) ([]byte, error) {
	if n.flattened {
		return n.flattenedData, nil
	}

	source, err := n.FileForLanguage("", "")
	if err != nil {
		return nil, err
	}

	data, err := htmlinline.InlineToString(source, allowExternalScript)
	if err != nil {
		return nil, fmt.Errorf("include %s: flattening %s: %w", n.Name(), source, err)
	}

	n.flattenedData = data
	n.flattened = true

	return data, nil
}

// Flatten inlines this node's file and writes the result into
// outputDir under the name <node-name>_<source-basename>, returning
// that basename. A repeated call with the same destination is a no-op:
// the file is written at most once per distinct target path.
func (n *Include) Flatten(outputDir string) (string, error) {
	source, err := n.FileForLanguage("", outputDir)
	if err != nil {
		return "", err
	}

	flatFilename := filepath.Join(outputDir, n.Name()+"_"+filepath.Base(source))

	if n.lastFlatFilename == flatFilename {
		return filepath.Base(flatFilename), nil
	}

	data, err := n.FlattenedData(n.BoolAttr("allowexternalscript"))
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(flatFilename, data, 0o644); err != nil {
		return "", fmt.Errorf("include %s: writing %s: %w", n.Name(), flatFilename, err)
	}

	n.lastFlatFilename = flatFilename

	return filepath.Base(flatFilename), nil
}

// DataPackPair returns the numeric resource id and raw bytes for this
// node, for packed-resource emission. Bytes come from the flatten
// cache when flattenhtml is set, otherwise from a raw read of the
// source file. encoding is accepted for interface symmetry and
// ignored: include payloads are opaque binary.
func (n *Include) DataPackPair(ids IDLookup, lang, encoding string) (int, []byte, error) {
	id, err := ids.Lookup(n.Name())
	if err != nil {
		return 0, nil, fmt.Errorf("include %s: %w", n.Name(), err)
	}

	if n.BoolAttr("flattenhtml") {
		data, err := n.FlattenedData(n.BoolAttr("allowexternalscript"))
		if err != nil {
			return 0, nil, err
		}

		return id, data, nil
	}

	source, err := n.FileForLanguage(lang, "")
	if err != nil {
		return 0, nil, err
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return 0, nil, fmt.Errorf("include %s: reading %s: %w", n.Name(), source, err)
	}

	return id, data, nil
}

// HTMLResourceFilenames returns the set of files the flattener would
// inline for this node, for dependency listing.
func (n *Include) HTMLResourceFilenames() ([]string, error) {
	source, err := n.FileForLanguage("", "")
	if err != nil {
		return nil, err
	}

	return htmlinline.ResourceFilenames(source, n.BoolAttr("allowexternalscript"))
}
