// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package format turns a resource tree into output text.

A static registry maps (node kind, output kind) pairs to formatters.
The tree walk visits nodes in document order, parent before children,
and emits each registered formatter's Begin text before descending,
its Format text for leaf content, and its End text after the children.
Pairs without a registered formatter are skipped silently, so one tree
can drive several output kinds without per-kind filtering anywhere
else.

All pass-scoped state (output kind, language, destination directory,
substituter, id table) travels in an explicit Pass threaded through the
walk.
*/
package format

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/resgen/resgen/node"
)

// OutputKind names one artifact family a tree can be rendered to.
type OutputKind string

const (
	// RcAll is the resource-script compilation unit.
	RcAll OutputKind = "rc_all"

	// RcHeader is the #define header pairing names with numeric ids.
	RcHeader OutputKind = "rc_header"
)

// Pass carries the state of one output pass through the tree walk.
type Pass struct {
	Kind      OutputKind
	Lang      string
	OutputDir string

	// Subst, when non-nil, is applied by formatters of nodes that
	// request variable expansion. Built once per pass, immutable.
	Subst *Substituter

	// IDs resolves textual identifiers for header and pack output.
	// Required for RcHeader passes.
	IDs node.IDLookup

	// PseudoAllowed permits pseudo-translation output from gatherers.
	PseudoAllowed bool
}

// Formatter renders one node for one output kind.
type Formatter interface {
	Format(n node.Node, p *Pass) (string, error)
}

// Beginner is implemented by block-grouping formatters that open a
// block before the node's children are emitted.
type Beginner interface {
	Begin(n node.Node, p *Pass) (string, error)
}

// Ender closes a block after the node's children are emitted.
type Ender interface {
	End(n node.Node, p *Pass) (string, error)
}

type registryKey struct {
	kind node.Kind
	out  OutputKind
}

var registry = map[registryKey]Formatter{}

// Register installs the formatter for a (node kind, output kind) pair.
// Called from init; later registrations replace earlier ones.
func Register(kind node.Kind, out OutputKind, f Formatter) {
	registry[registryKey{kind: kind, out: out}] = f
}

// For returns the registered formatter for the pair, if any.
func For(kind node.Kind, out OutputKind) (Formatter, bool) {
	f, ok := registry[registryKey{kind: kind, out: out}]

	return f, ok
}

// Process walks the tree under n in document order and writes the
// concatenated formatter output to w. Repeated runs against the same
// tree and filesystem state produce byte-identical output.
func Process(n node.Node, p *Pass, w io.Writer) error {
	f, ok := For(n.Kind(), p.Kind)

	if ok {
		if b, isBeginner := f.(Beginner); isBeginner {
			text, err := b.Begin(n, p)
			if err != nil {
				return err
			}

			if _, err := io.WriteString(w, text); err != nil {
				return fmt.Errorf("writing %s output: %w", p.Kind, err)
			}
		}

		text, err := f.Format(n, p)
		if err != nil {
			return err
		}

		if _, err := io.WriteString(w, text); err != nil {
			return fmt.Errorf("writing %s output: %w", p.Kind, err)
		}
	}

	for _, child := range n.Children() {
		if err := Process(child, p, w); err != nil {
			return err
		}
	}

	if ok {
		if e, isEnder := f.(Ender); isEnder {
			text, err := e.End(n, p)
			if err != nil {
				return err
			}

			if _, err := io.WriteString(w, text); err != nil {
				return fmt.Errorf("writing %s output: %w", p.Kind, err)
			}
		}
	}

	return nil
}

// ProcessToString renders the tree under n to a string.
func ProcessToString(n node.Node, p *Pass) (string, error) {
	var b strings.Builder
	if err := Process(n, p, &b); err != nil {
		return "", err
	}

	return b.String(), nil
}
