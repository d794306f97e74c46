// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package htmlinline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/resgen/resgen/htmlinline"
)

// writeTree lays out a small HTML page with every reference kind the
// inliner handles.
func writeTree(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	files := map[string]string{
		"index.html": `<html><head>
<link rel="stylesheet" href="style.css">
<script src="local.js"></script>
<script src="https://cdn.example.com/external.js"></script>
</head><body>
<img src="logo.png">
<include src="fragment.html">
</body></html>`,
		"style.css":     `body { background: url("logo.png"); }`,
		"local.js":      `var answer = 42;`,
		"logo.png":      "not-really-png",
		"fragment.html": `<p>Hello Include!</p>`,
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func TestInlineToString(t *testing.T) {
	t.Parallel()

	dir := writeTree(t)

	out, err := htmlinline.InlineToString(filepath.Join(dir, "index.html"), false)
	require.NoError(t, err)

	html := string(out)

	// Local image became a data URL.
	assert.Contains(t, html, "data:image/png;base64,")
	assert.NotContains(t, html, `src="logo.png"`)

	// Local script embedded inline, external script stripped.
	assert.Contains(t, html, "var answer = 42;")
	assert.NotContains(t, html, "cdn.example.com")

	// Stylesheet became a <style> block with its url() inlined.
	assert.Contains(t, html, "<style>")
	assert.NotContains(t, html, `href="style.css"`)

	// The include directive was replaced by the fragment content.
	assert.Contains(t, html, "Hello Include!")
	assert.NotContains(t, html, "<include")
}

func TestInlineAllowsExternalScript(t *testing.T) {
	t.Parallel()

	dir := writeTree(t)

	out, err := htmlinline.InlineToString(filepath.Join(dir, "index.html"), true)
	require.NoError(t, err)

	assert.Contains(t, string(out), "cdn.example.com")
}

// Unclosed include tags must not swallow the markup that follows them.
func TestInlineKeepsContentAfterInclude(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
		[]byte(`<html><body><include src="fragment.html"><p>after the directive</p></body></html>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fragment.html"),
		[]byte(`<p>Hello Include!</p>`), 0o644))

	out, err := htmlinline.InlineToString(filepath.Join(dir, "index.html"), false)
	require.NoError(t, err)

	html := string(out)

	assert.Contains(t, html, "Hello Include!")
	assert.Contains(t, html, "after the directive")
	assert.NotContains(t, html, "<include")
}

func TestInlineSelfClosedInclude(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
		[]byte(`<html><body><include src="fragment.html"/><p>trailer</p></body></html>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fragment.html"),
		[]byte(`<p>Hello Include!</p>`), 0o644))

	out, err := htmlinline.InlineToString(filepath.Join(dir, "index.html"), false)
	require.NoError(t, err)

	assert.Contains(t, string(out), "Hello Include!")
	assert.Contains(t, string(out), "trailer")
}

func TestInlineMissingResourceFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(page, []byte(`<html><body><img src="nope.png"></body></html>`), 0o644))

	_, err := htmlinline.InlineToString(page, false)
	require.Error(t, err)
}

func TestInlineCircularInclude(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"),
		[]byte(`<html><body><include src="b.html"></body></html>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.html"),
		[]byte(`<html><body><include src="a.html"></body></html>`), 0o644))

	_, err := htmlinline.InlineToString(filepath.Join(dir, "a.html"), false)
	require.Error(t, err)
}

func TestResourceFilenames(t *testing.T) {
	t.Parallel()

	dir := writeTree(t)

	files, err := htmlinline.ResourceFilenames(filepath.Join(dir, "index.html"), false)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "fragment.html"),
		filepath.Join(dir, "local.js"),
		filepath.Join(dir, "logo.png"),
		filepath.Join(dir, "style.css"),
	}

	assert.Equal(t, want, files)
}
