// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package format

import (
	"strings"

	"codeberg.org/resgen/resgen/locale"
)

// Substituter replaces bracketed placeholder tokens in generated text
// with language-dependent values. It is built once per output pass and
// immutable afterwards.
//
// Replacement is literal and single-pass: a replacement value that
// itself contains a placeholder token is never re-expanded.
type Substituter struct {
	replacer *strings.Replacer
}

// Placeholder tokens recognized in generated text. Version-info
// templates embed these to receive the locale identifiers of the
// output language.
const (
	PlaceholderLangCharsetList = "[VERLANGCHARSETLIST]"
	PlaceholderLangID          = "[VERLANGID]"
	PlaceholderCharsetID       = "[VERCHARSETID]"
)

// NewSubstituter builds the substituter for one output pass, resolving
// the three fixed placeholders from the locale tables for lang.
// Unknown languages yield empty replacement values, mirroring the
// locale table's degrade-don't-fail contract.
func NewSubstituter(lang string) *Substituter {
	return &Substituter{
		replacer: strings.NewReplacer(
			PlaceholderLangCharsetList, locale.LangCharsetPair(lang),
			PlaceholderLangID, locale.HexLangID(lang),
			PlaceholderCharsetID, locale.CharsetIDDecimal(lang),
		),
	}
}

// Apply returns text with all placeholder tokens replaced. A nil
// Substituter is a safe no-op, so callers need not guard the case
// where no pass-level substitution was requested.
func (s *Substituter) Apply(text string) string {
	if s == nil {
		return text
	}

	return s.replacer.Replace(text)
}
