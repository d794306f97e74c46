// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package node

import "fmt"

// Message is a leaf carrying one translatable string resource.
//
// The text is stored stripped of its leading and trailing whitespace;
// the stripped runs are kept separately so translation operates on the
// payload and the whitespace is re-attached afterwards.
type Message struct {
	base

	text     string
	leading  string
	trailing string
}

// ConstructMessage creates a message node under parent.
//
// text is taken verbatim including surrounding whitespace; subVariable
// marks the message for placeholder expansion when the pass carries a
// substituter.
func ConstructMessage(parent Node, name, text string, subVariable bool) *Message {
	leading, payload, trailing := splitWhitespace(text)

	m := &Message{text: payload, leading: leading, trailing: trailing}
	m.setAttr("name", name)
	m.setAttr("sub_variable", BoolToString(subVariable))

	attach(parent, m, &m.base)

	return m
}

func (m *Message) Kind() Kind { return KindMessage }

// SourceText returns the message payload in the source language,
// without the surrounding whitespace runs.
func (m *Message) SourceText() string { return m.text }

// Translate returns the message text for lang, with the original
// leading and trailing whitespace re-attached. Without a translator on
// the root, or when the translator has no entry, the source text is
// returned unchanged.
func (m *Message) Translate(lang string) string {
	text := m.text

	if r := RootOf(m); r != nil && r.translator != nil {
		text = r.translator.Translate(lang, m.text)
	}

	return m.leading + text + m.trailing
}

// DataPackPair returns the numeric resource id and the translated
// message text as UTF-8 bytes, for packed-resource emission. encoding
// is accepted for interface symmetry and ignored: message payloads are
// always UTF-8.
func (m *Message) DataPackPair(ids IDLookup, lang, encoding string) (int, []byte, error) {
	id, err := ids.Lookup(m.Name())
	if err != nil {
		return 0, nil, fmt.Errorf("message %s: %w", m.Name(), err)
	}

	return id, []byte(m.Translate(lang)), nil
}

// ExpandVariables reports whether this message participates in
// placeholder substitution: either the message itself carries the
// sub_variable flag or its containing group enables expansion.
func (m *Message) ExpandVariables() bool {
	if m.BoolAttr("sub_variable") {
		return true
	}

	if p := m.Parent(); p != nil && p.BoolAttr("expand_variables") {
		return true
	}

	return false
}

// splitWhitespace splits text into its leading whitespace run, the
// payload, and the trailing whitespace run.
func splitWhitespace(text string) (leading, payload, trailing string) {
	start := 0
	for start < len(text) && isSpace(text[start]) {
		start++
	}

	end := len(text)
	for end > start && isSpace(text[end-1]) {
		end--
	}

	return text[:start], text[start:end], text[end:]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
