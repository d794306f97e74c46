// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package node holds the document model for a resource tree: a root
carrying the registered output files, grouping elements, and the three
leaf kinds (message, structure, include) the rc formatters know how to
emit.

The tree is produced and validated by an external parser or by the
Construct helpers below; the formatting core only reads it. The single
exception is the include node's flatten cache, which is node-local
mutable state scoped to the node's lifetime.

Attribute values are stored as strings; boolean attributes hold the
literal strings "true" or "false".
*/
package node

// Kind tags the concrete type of a tree node.
type Kind string

const (
	KindRoot       Kind = "root"
	KindMessages   Kind = "messages"
	KindMessage    Kind = "message"
	KindStructures Kind = "structures"
	KindStructure  Kind = "structure"
	KindIncludes   Kind = "includes"
	KindInclude    Kind = "include"
)

// Node is the read-only view of one tree element.
type Node interface {
	Kind() Kind

	// Name returns the textual identifier emitted as the resource
	// symbol. Unique within the scope written to one output file.
	Name() string

	// Attr returns the value of a string attribute, or "" when unset.
	Attr(key string) string

	// BoolAttr reports whether a boolean attribute holds "true".
	BoolAttr(key string) bool

	Children() []Node
	Parent() Node
}

// Translator resolves a message id to its translation for a language.
// Implementations fall back to the msgid itself for unknown languages
// or ids.
type Translator interface {
	Translate(lang, msgid string) string
}

// IDLookup resolves a textual resource identifier to its numeric id.
type IDLookup interface {
	Lookup(name string) (int, error)
}

// base carries the state shared by every node kind.
type base struct {
	parent   Node
	children []Node
	attrs    map[string]string
}

func (b *base) Name() string { return b.attrs["name"] }

func (b *base) Attr(key string) string { return b.attrs[key] }

func (b *base) BoolAttr(key string) bool { return b.attrs[key] == "true" }

func (b *base) Children() []Node { return b.children }

func (b *base) Parent() Node { return b.parent }

// setAttr is used by the Construct helpers; the formatting core never
// calls it.
func (b *base) setAttr(key, value string) {
	if b.attrs == nil {
		b.attrs = map[string]string{}
	}

	b.attrs[key] = value
}

// adopter is implemented by every node via the embedded base.
type adopter interface {
	adopt(child Node)
}

func (b *base) adopt(child Node) { b.children = append(b.children, child) }

// attach links child under parent. A nil parent leaves the child as a
// detached root of its own subtree.
func attach(parent Node, child Node, childBase *base) {
	childBase.parent = parent

	if parent == nil {
		return
	}

	if p, ok := parent.(adopter); ok {
		p.adopt(child)
	}
}

// RootOf walks parent links to the owning Root, or nil when the node
// sits in a detached subtree.
func RootOf(n Node) *Root {
	for n != nil {
		if r, ok := n.(*Root); ok {
			return r
		}

		n = n.Parent()
	}

	return nil
}

// BoolToString renders a flag the way attribute bags store it.
func BoolToString(v bool) string {
	if v {
		return "true"
	}

	return "false"
}

// Group is a pure container element (messages, structures, includes).
// It has no formatter of its own except the string-table block
// emitted around messages.
type Group struct {
	base
	kind Kind
}

// NewGroup creates a container of the given kind under parent.
func NewGroup(parent Node, kind Kind, attrs map[string]string) *Group {
	g := &Group{kind: kind}
	for k, v := range attrs {
		g.setAttr(k, v)
	}

	attach(parent, g, &g.base)

	return g
}

func (g *Group) Kind() Kind { return g.kind }
