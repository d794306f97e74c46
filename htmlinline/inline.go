// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package htmlinline combines an HTML file and the sub-resources it
references into one self-contained byte stream.

Local images become base64 data URLs, local scripts and stylesheets are
embedded inline, and <include src="..."> directives are replaced by the
(recursively inlined) content of the referenced file. References that
are already absolute URLs or data URLs are left alone. External script
references are stripped unless explicitly allowed.
*/
package htmlinline

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// cssURLPattern matches url(...) references inside stylesheet text.
var cssURLPattern = regexp.MustCompile(`url\(\s*['"]?([^)'"]+?)['"]?\s*\)`)

// includeTagPattern matches an <include ...> open tag, with or without
// a self-closing slash.
var includeTagPattern = regexp.MustCompile(`(?i)<include\b[^>]*?>`)

// InlineToString reads the HTML file at path and returns it with all
// referenced local sub-resources inlined. When allowExternalScript is
// false, <script> elements with an external src are removed.
func InlineToString(path string, allowExternalScript bool) ([]byte, error) {
	in := &inliner{
		allowExternalScript: allowExternalScript,
		seen:                map[string]struct{}{},
	}

	return in.inlineFile(path)
}

// ResourceFilenames returns the sorted set of local files the inliner
// would embed for the HTML file at path, including the transitive
// closure of <include> directives. path itself is not part of the set.
func ResourceFilenames(path string, allowExternalScript bool) ([]string, error) {
	in := &inliner{
		allowExternalScript: allowExternalScript,
		seen:                map[string]struct{}{},
		collect:             map[string]struct{}{},
	}

	if _, err := in.inlineFile(path); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(in.collect))
	for f := range in.collect {
		out = append(out, f)
	}

	sort.Strings(out)

	return out, nil
}

type inliner struct {
	allowExternalScript bool

	// seen guards against include cycles.
	seen map[string]struct{}

	// collect, when non-nil, records every local file read.
	collect map[string]struct{}
}

func (in *inliner) inlineFile(path string) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	if _, ok := in.seen[abs]; ok {
		return nil, fmt.Errorf("circular include of %s", path)
	}

	in.seen[abs] = struct{}{}
	defer delete(in.seen, abs)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// <include> is unknown to the HTML5 parser, so an unclosed include
	// tag would adopt everything after it as children and they would be
	// lost when the directive is replaced. Close the tags up front so a
	// directive only ever spans itself.
	raw = closeIncludeTags(raw)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	dir := filepath.Dir(path)

	if err := in.processDoc(doc, dir); err != nil {
		return nil, fmt.Errorf("inlining %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc.Nodes[0]); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}

	return buf.Bytes(), nil
}

// closeIncludeTags rewrites every <include ...> open tag into an
// explicitly closed element. A trailing self-closing slash is dropped
// too; the parser does not honour it on non-void elements.
func closeIncludeTags(raw []byte) []byte {
	return includeTagPattern.ReplaceAllFunc(raw, func(tag []byte) []byte {
		open := bytes.TrimSuffix(tag, []byte(">"))
		open = bytes.TrimRight(open, "/ \t")

		return append(append(open, '>'), "</include>"...)
	})
}

func (in *inliner) processDoc(doc *goquery.Document, dir string) error {
	var firstErr error

	keep := func(err error) {
		if firstErr == nil && err != nil {
			firstErr = err
		}
	}

	// <include src="..."> directives are replaced with the recursively
	// inlined content of the referenced file.
	doc.Find("include[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if !isLocalRef(src) {
			sel.Remove()

			return
		}

		target := filepath.Join(dir, filepath.FromSlash(src))
		in.record(target)

		data, err := in.inlineSubdocument(target)
		if err != nil {
			keep(err)

			return
		}

		sel.ReplaceWithHtml(string(data))
	})

	// Scripts: embed local ones, strip external ones unless allowed.
	doc.Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if !isLocalRef(src) {
			if !in.allowExternalScript {
				sel.Remove()
			}

			return
		}

		target := filepath.Join(dir, filepath.FromSlash(src))
		in.record(target)

		content, err := os.ReadFile(target)
		if err != nil {
			keep(fmt.Errorf("reading script %s: %w", target, err))

			return
		}

		sel.RemoveAttr("src")
		sel.SetHtml(string(content))
	})

	// Stylesheets become <style> blocks with their own url() references
	// inlined.
	doc.Find("link[rel='stylesheet'][href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !isLocalRef(href) {
			return
		}

		target := filepath.Join(dir, filepath.FromSlash(href))
		in.record(target)

		content, err := os.ReadFile(target)
		if err != nil {
			keep(fmt.Errorf("reading stylesheet %s: %w", target, err))

			return
		}

		css := in.inlineCSSURLs(string(content), filepath.Dir(target))
		sel.ReplaceWithHtml("<style>" + css + "</style>")
	})

	// Images and image inputs become data URLs.
	doc.Find("img[src], input[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if !isLocalRef(src) {
			return
		}

		target := filepath.Join(dir, filepath.FromSlash(src))
		in.record(target)

		url, err := dataURL(target)
		if err != nil {
			keep(err)

			return
		}

		sel.SetAttr("src", url)
	})

	// Inline url() references inside <style> blocks as well.
	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		css := in.inlineCSSURLs(sel.Text(), dir)
		sel.SetText(css)
	})

	return firstErr
}

// inlineSubdocument inlines an included fragment. The fragment is
// parsed standalone and its body content extracted, so included files
// do not contribute nested <html> scaffolding.
func (in *inliner) inlineSubdocument(path string) (string, error) {
	data, err := in.inlineFile(path)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("reparsing inlined %s: %w", path, err)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return string(data), nil
	}

	inner, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("extracting inlined %s: %w", path, err)
	}

	return inner, nil
}

// inlineCSSURLs replaces local url(...) references in stylesheet text
// with data URLs. Unresolvable references are left untouched rather
// than failing the flatten.
func (in *inliner) inlineCSSURLs(css, dir string) string {
	return cssURLPattern.ReplaceAllStringFunc(css, func(match string) string {
		ref := cssURLPattern.FindStringSubmatch(match)[1]
		if !isLocalRef(ref) {
			return match
		}

		target := filepath.Join(dir, filepath.FromSlash(ref))

		url, err := dataURL(target)
		if err != nil {
			return match
		}

		in.record(target)

		return "url(" + url + ")"
	})
}

func (in *inliner) record(path string) {
	if in.collect != nil {
		in.collect[path] = struct{}{}
	}
}

// isLocalRef reports whether ref points at a file next to the document
// rather than an absolute URL, protocol-relative URL or data URL.
func isLocalRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") {
		return false
	}

	if strings.HasPrefix(ref, "//") || strings.HasPrefix(ref, "data:") {
		return false
	}

	if strings.Contains(ref, "://") {
		return false
	}

	return true
}

// dataURL encodes the file at path as a base64 data URL.
func dataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading resource %s: %w", path, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	// TypeByExtension may append a charset parameter; data URLs here
	// carry the bare type.
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
