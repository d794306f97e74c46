// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

func (cfg *Config) readYAML(path string) error {
	raw, err := os.ReadFile(path) // #nosec G304 -- Only loading a manifest file
	if err != nil {
		return fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Msg("Loaded manifest")

	return nil
}
