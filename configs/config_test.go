// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `base_dir: src
source_lang: en
id_table: ids.yaml
catalog_dir: po
outputs:
  - kind: rc_all
    lang: fr
    filename: build/fr/resources.rc
    language_policy: language
  - kind: rc_header
    lang: fr
    filename: build/fr/resource.h
resources:
  messages:
    - name: IDS_BTN_GO
      text: "Go!"
  includes:
    - name: TEXT_ONE
      type: TXT
      file: bingo.txt
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.BaseDir)
	assert.Equal(t, "en", cfg.SourceLang)
	assert.Len(t, cfg.Outputs, 2)
	assert.Equal(t, "language", cfg.Outputs[0].LanguagePolicy)

	// Unset policy defaults to neutral.
	assert.Equal(t, "neutral", cfg.Outputs[1].LanguagePolicy)

	require.Len(t, cfg.Resources.Messages, 1)
	assert.Equal(t, "Go!", cfg.Resources.Messages[0].Text)
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeManifest(t, `outputs:
  - kind: rc_all
    lang: en
    filename: out.rc
`))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.BaseDir)
	assert.Equal(t, "en", cfg.SourceLang)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest string
	}{
		{"No outputs", `base_dir: .`},
		{"Output without filename", `outputs:
  - kind: rc_all
    lang: en
`},
		{"Bad language policy", `outputs:
  - kind: rc_all
    lang: en
    filename: out.rc
    language_policy: sometimes
`},
		{"Bad log level", `log:
  level: chatty
outputs:
  - kind: rc_all
    lang: en
    filename: out.rc
`},
		{"Duplicate resource name", `outputs:
  - kind: rc_all
    lang: en
    filename: out.rc
resources:
  messages:
    - name: IDS_X
      text: a
    - name: IDS_X
      text: b
`},
		{"Include without file", `outputs:
  - kind: rc_all
    lang: en
    filename: out.rc
resources:
  includes:
    - name: TEXT_ONE
      type: TXT
`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeManifest(t, tt.manifest))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
