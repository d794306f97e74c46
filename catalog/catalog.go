// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package catalog provides message translations backed by GNU gettext
.po files.

Catalogs are loaded from a directory laid out as <locale>.po, where the
locale part may use hyphens or underscores and is normalized to a
canonical BCP 47 tag. The source message text is the msgid; lookups for
an unknown language or msgid fall back to the msgid unchanged, so an
untranslated build still produces usable output.
*/
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Logger is the logger used by package catalog.
var Logger zerolog.Logger = log.With().Str("sys", "catalog").Logger()

// Catalog holds the loaded per-language translation files.
type Catalog struct {
	// byTag maps canonical BCP 47 tags, for example "fr" or "pt-BR",
	// to their parsed .po file.
	byTag map[string]*gotext.Po
}

// Load scans dir for <locale>.po files and parses each one. Files whose
// name does not parse as a language tag are skipped with a warning.
// A missing directory is not an error; it yields an empty catalog.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{byTag: map[string]*gotext.Po{}}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return c, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".po") {
			continue
		}

		localeName := strings.TrimSuffix(entry.Name(), ".po")

		// Accept both underscore and hyphen; match on canonical BCP 47.
		t, err := language.Parse(strings.ReplaceAll(localeName, "_", "-"))
		if err != nil {
			Logger.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping invalid locale file")

			continue
		}

		po := gotext.NewPo()
		po.ParseFile(filepath.Join(dir, entry.Name()))

		canonical := t.String()
		c.byTag[canonical] = po

		Logger.Info().
			Str("locale", canonical).
			Msg("Loaded catalog")
	}

	return c, nil
}

// Translate returns the translation of msgid for lang, or msgid itself
// when the language or the message is unknown.
func (c *Catalog) Translate(lang, msgid string) string {
	t, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return msgid
	}

	po, ok := c.byTag[t.String()]
	if !ok {
		return msgid
	}

	// gotext returns the msgid itself for missing entries.
	return po.Get(msgid)
}

// Languages returns the canonical tags with a loaded catalog, in no
// particular order.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.byTag))
	for tag := range c.byTag {
		out = append(out, tag)
	}

	return out
}
