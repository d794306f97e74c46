// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package locale maps output language codes to the Windows locale and
charset identifiers that resource scripts embed, most visibly inside
VERSIONINFO blocks.

Two static tables are kept: one maps a language code to the combined
8-hex-digit locale-id/codepage pair, the other to the human-readable
LANGUAGE directive pair such as "LANG_FRENCH, SUBLANG_FRENCH". Both are
initialized once and never mutated.

Unknown codes do not fail a build. Lookups degrade to a documented
sentinel (an empty hex pair, or the literal "unknown language"
directive) and log a warning once per code, so an unsupported UI
language produces degraded but compilable output instead of aborting
the pass.
*/
package locale

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// NeutralDirective is the directive emitted when no language-specific
// section is requested.
const NeutralDirective = "LANG_NEUTRAL, SUBLANG_NEUTRAL"

// UnknownDirective is the sentinel returned for codes missing from the
// directive table.
const UnknownDirective = "unknown language"

// Entry bundles the two identifiers kept for a language code.
type Entry struct {
	// LcidCharsetHex is the combined locale-id and codepage pair as
	// 8 hex digits, e.g. "040c04e4" for French with cp1252.
	LcidCharsetHex string

	// Directive is the LANGUAGE statement argument pair.
	Directive string
}

// Normalize canonicalizes a language code for table lookup: underscores
// become hyphens and the result is put in canonical BCP 47 casing when
// the code parses as a tag. Codes that do not parse are returned with
// only the separator fixup applied.
func Normalize(code string) string {
	fixed := strings.ReplaceAll(code, "_", "-")

	t, err := language.Parse(fixed)
	if err != nil {
		return fixed
	}

	return t.String()
}

// Lookup returns the Entry for code, after normalization. Missing
// fields carry their sentinel values; Lookup itself never fails.
func Lookup(code string) Entry {
	return Entry{
		LcidCharsetHex: LangCharsetPair(code),
		Directive:      LangDirectivePair(code),
	}
}

// LangCharsetPair returns the 8-hex-digit locale-id/codepage pair for
// code, or "" when the code is not in the table.
func LangCharsetPair(code string) string {
	norm := Normalize(code)

	pair, ok := langCharsetPairs[norm]
	if !ok {
		warnUnknownOnce(norm, "no locale/charset pair for language")

		return ""
	}

	return pair
}

// LangDirectivePair returns the LANGUAGE directive argument pair for
// code, or UnknownDirective when the code is not in the table.
func LangDirectivePair(code string) string {
	norm := Normalize(code)

	directive, ok := langDirectivePairs[norm]
	if !ok {
		warnUnknownOnce(norm, "no LANGUAGE directive for language")

		return UnknownDirective
	}

	return directive
}

// HexLangID returns the first four hex digits of the locale/charset
// pair, i.e. the bare locale id, or "" for unknown codes.
func HexLangID(code string) string {
	pair := LangCharsetPair(code)
	if len(pair) < 4 {
		return ""
	}

	return pair[:4]
}

// CharsetIDDecimal returns the trailing four hex digits of the
// locale/charset pair rendered in decimal, e.g. "04e4" -> "1252".
// Unknown codes yield "".
func CharsetIDDecimal(code string) string {
	pair := LangCharsetPair(code)
	if len(pair) < 8 {
		return ""
	}

	n, err := strconv.ParseInt(pair[4:8], 16, 32)
	if err != nil {
		// Table entries are validated by the tests; a parse failure
		// here means a corrupt table, treat it like a miss.
		warnUnknownOnce(Normalize(code), "malformed charset digits in locale table")

		return ""
	}

	return strconv.FormatInt(n, 10)
}
