// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package node_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/resgen/resgen/ids"
	"codeberg.org/resgen/resgen/node"
)

// newFlattenTree writes a small HTML source file and returns an
// include node referencing it with flattenhtml set.
func newFlattenTree(t *testing.T) (*node.Include, string) {
	t.Helper()

	srcDir := t.TempDir()
	page := filepath.Join(srcDir, "page.html")
	require.NoError(t, os.WriteFile(page, []byte("<html><body><p>Hello Include!</p></body></html>"), 0o644))

	root := node.NewRoot(srcDir, "en")
	incs := node.NewGroup(root, node.KindIncludes, nil)

	inc := node.ConstructInclude(incs, "HTML_FILE1", "BINDATA", "page.html")
	inc.SetFlag("flattenhtml", true)

	return inc, page
}

// Flattening the same node to the same destination twice performs
// exactly one filesystem write.
func TestFlattenIdempotent(t *testing.T) {
	t.Parallel()

	inc, _ := newFlattenTree(t)
	outDir := t.TempDir()

	name, err := inc.Flatten(outDir)
	require.NoError(t, err)
	assert.Equal(t, "HTML_FILE1_page.html", name)

	flat := filepath.Join(outDir, name)

	data, err := os.ReadFile(flat)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hello Include!")

	// Clobber the flattened file; a repeated flatten to the same
	// destination must not rewrite it.
	require.NoError(t, os.WriteFile(flat, []byte("sentinel"), 0o644))

	again, err := inc.Flatten(outDir)
	require.NoError(t, err)
	assert.Equal(t, name, again)

	data, err = os.ReadFile(flat)
	require.NoError(t, err)
	assert.Equal(t, "sentinel", string(data), "second flatten must be a no-op write")
}

// A different destination path invalidates the path cache and writes
// again.
func TestFlattenNewDestination(t *testing.T) {
	t.Parallel()

	inc, _ := newFlattenTree(t)

	firstDir := t.TempDir()
	secondDir := t.TempDir()

	_, err := inc.Flatten(firstDir)
	require.NoError(t, err)

	name, err := inc.Flatten(secondDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(secondDir, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hello Include!")
}

// The bytes cache is computed once, independent of any destination.
func TestFlattenedDataMemoized(t *testing.T) {
	t.Parallel()

	inc, page := newFlattenTree(t)

	first, err := inc.FlattenedData(false)
	require.NoError(t, err)
	assert.Contains(t, string(first), "Hello Include!")

	// Changing the source after the first computation must not change
	// the cached bytes.
	require.NoError(t, os.WriteFile(page, []byte("<html><body>changed</body></html>"), 0o644))

	second, err := inc.FlattenedData(false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDataPackPair(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "logo.png"), payload, 0o644))

	root := node.NewRoot(srcDir, "en")
	incs := node.NewGroup(root, node.KindIncludes, nil)
	inc := node.ConstructInclude(incs, "IDR_LOGO", "BINDATA", "logo.png")

	table := ids.NewTable(map[string]int{"IDR_LOGO": 120})

	id, data, err := inc.DataPackPair(table, "en", "utf-8")
	require.NoError(t, err)
	assert.Equal(t, 120, id)
	assert.Equal(t, payload, data)
}

func TestDataPackPairUnknownID(t *testing.T) {
	t.Parallel()

	root := node.NewRoot(t.TempDir(), "en")
	incs := node.NewGroup(root, node.KindIncludes, nil)
	inc := node.ConstructInclude(incs, "IDR_MISSING", "BINDATA", "missing.png")

	_, _, err := inc.DataPackPair(ids.NewTable(nil), "en", "utf-8")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ids.ErrUnknownID), "expected ErrUnknownID, got %v", err)
}

func TestDataPackPairFlattened(t *testing.T) {
	t.Parallel()

	inc, _ := newFlattenTree(t)

	table := ids.NewTable(map[string]int{"HTML_FILE1": 7})

	id, data, err := inc.DataPackPair(table, "en", "utf-8")
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Contains(t, string(data), "Hello Include!")
}

func TestMessageDataPackPair(t *testing.T) {
	t.Parallel()

	root := node.NewRoot(".", "en")
	root.SetTranslator(mapTranslator{"Go!": "Allez !"})

	msgs := node.NewGroup(root, node.KindMessages, nil)
	msg := node.ConstructMessage(msgs, "IDS_BTN_GO", " Go! ", false)

	table := ids.NewTable(map[string]int{"IDS_BTN_GO": 310})

	id, data, err := msg.DataPackPair(table, "fr", "utf-8")
	require.NoError(t, err)
	assert.Equal(t, 310, id)
	assert.Equal(t, []byte(" Allez ! "), data)
}

func TestMessageDataPackPairUnknownID(t *testing.T) {
	t.Parallel()

	root := node.NewRoot(".", "en")
	msgs := node.NewGroup(root, node.KindMessages, nil)
	msg := node.ConstructMessage(msgs, "IDS_NOWHERE", "text", false)

	_, _, err := msg.DataPackPair(ids.NewTable(nil), "en", "utf-8")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ids.ErrUnknownID), "expected ErrUnknownID, got %v", err)
}

func TestHTMLResourceFilenames(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "page.html"),
		[]byte(`<html><body><img src="a.png"></body></html>`), 0o644))

	root := node.NewRoot(srcDir, "en")
	incs := node.NewGroup(root, node.KindIncludes, nil)
	inc := node.ConstructInclude(incs, "HTML_FILE1", "BINDATA", "page.html")

	files, err := inc.HTMLResourceFilenames()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(srcDir, "a.png")}, files)
}
