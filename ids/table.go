// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ids resolves textual resource identifiers to the numeric ids
emitted into headers and packed-resource containers.

The table is maintained outside this tool; it is loaded read-only from
a YAML file mapping names to numbers. Lookup misses are hard errors:
an id that silently drifts between header and pack output corrupts
every consumer of the pack.
*/
package ids

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
)

// ErrUnknownID is returned when a textual identifier has no entry.
var ErrUnknownID = errors.New("unknown resource id")

// Table maps textual resource identifiers to numeric ids. Immutable
// after construction.
type Table struct {
	byName map[string]int
}

// NewTable builds a table from an explicit mapping.
func NewTable(m map[string]int) *Table {
	byName := make(map[string]int, len(m))
	for k, v := range m {
		byName[k] = v
	}

	return &Table{byName: byName}
}

// Load reads a YAML file mapping identifier names to numeric ids.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read id table %s: %w", path, err)
	}

	var m map[string]int
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse id table %s: %w", path, err)
	}

	return NewTable(m), nil
}

// Lookup returns the numeric id for name.
func (t *Table) Lookup(name string) (int, error) {
	id, ok := t.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownID, name)
	}

	return id, nil
}

// Names returns all known identifiers sorted by name, for deterministic
// header emission.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.byName))
	for name := range t.byName {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}
