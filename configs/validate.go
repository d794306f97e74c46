// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"errors"
	"fmt"
)

var (
	errNoOutputs      = errors.New("manifest declares no outputs")
	errMissingName    = errors.New("resource entry without a name")
	errDuplicateName  = errors.New("duplicate resource name")
	errMissingFile    = errors.New("resource entry without a file")
	errBadPolicy      = errors.New("language_policy must be neutral, language or omit")
	errBadLogLevel    = errors.New("log level must be debug, info, warn or error")
	errIncompleteSpec = errors.New("output needs kind, lang and filename")
)

func (cfg *Config) validate() error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", errBadLogLevel, cfg.Log.Level)
	}

	if len(cfg.Outputs) == 0 {
		return errNoOutputs
	}

	for _, out := range cfg.Outputs {
		if out.Kind == "" || out.Lang == "" || out.Filename == "" {
			return fmt.Errorf("%w: %+v", errIncompleteSpec, out)
		}

		switch out.LanguagePolicy {
		case "neutral", "language", "omit":
		default:
			return fmt.Errorf("%w: got %q", errBadPolicy, out.LanguagePolicy)
		}
	}

	// Resource names must be unique within the tree; the emitted
	// symbol is the name.
	seen := map[string]struct{}{}

	check := func(name, file string, needsFile bool) error {
		if name == "" {
			return errMissingName
		}

		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s", errDuplicateName, name)
		}

		seen[name] = struct{}{}

		if needsFile && file == "" {
			return fmt.Errorf("%w: %s", errMissingFile, name)
		}

		return nil
	}

	for _, m := range cfg.Resources.Messages {
		if err := check(m.Name, "", false); err != nil {
			return err
		}
	}

	for _, s := range cfg.Resources.Structures {
		if err := check(s.Name, s.File, true); err != nil {
			return err
		}
	}

	for _, inc := range cfg.Resources.Includes {
		if err := check(inc.Name, inc.File, true); err != nil {
			return err
		}
	}

	return nil
}
