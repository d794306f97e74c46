// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package config

func (cfg *Config) applyDefaults() {
	if cfg.BaseDir == "" {
		cfg.BaseDir = "."
	}

	if cfg.SourceLang == "" {
		cfg.SourceLang = "en"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	for i := range cfg.Outputs {
		if cfg.Outputs[i].LanguagePolicy == "" {
			cfg.Outputs[i].LanguagePolicy = "neutral"
		}
	}
}
