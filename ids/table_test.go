// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package ids_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/resgen/resgen/ids"
)

func TestTableLookup(t *testing.T) {
	t.Parallel()

	table := ids.NewTable(map[string]int{"IDS_BTN_GO": 2000, "IDR_LOGO": 120})

	id, err := table.Lookup("IDS_BTN_GO")
	require.NoError(t, err)
	assert.Equal(t, 2000, id)

	_, err = table.Lookup("IDS_MISSING")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ids.ErrUnknownID))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ids.yaml")
	require.NoError(t, os.WriteFile(path, []byte("IDS_BTN_GO: 2000\nIDR_LOGO: 120\n"), 0o644))

	table, err := ids.Load(path)
	require.NoError(t, err)

	id, err := table.Lookup("IDR_LOGO")
	require.NoError(t, err)
	assert.Equal(t, 120, id)

	assert.Equal(t, []string{"IDR_LOGO", "IDS_BTN_GO"}, table.Names())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ids.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
