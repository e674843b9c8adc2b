package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdcontext/mdcontext-mcp/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNew_FolderMustExist(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestNew_FolderMustBeDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.md", "# A\n")

	_, err := New(filepath.Join(dir, "file.md"))
	assert.ErrorContains(t, err, "not a directory")
}

func TestScan_RecursiveDiscovery(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.md", "# Top\n\ntop body\n")
	writeFile(t, dir, "nested/deep/inner.md", "# Inner\n\ninner body\n")
	writeFile(t, dir, "notes.txt", "not markdown")
	writeFile(t, dir, "data.json", "{}")

	s, err := New(dir)
	require.NoError(t, err)
	coll, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, 2, coll.Len())

	doc, err := coll.Get("nested/deep/inner.md")
	require.NoError(t, err)
	assert.Contains(t, doc.Content, "inner body")
}

func TestScan_PathsAreSlashSeparatedAndRelative(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sub/doc.md", "body\n")

	s, err := New(dir)
	require.NoError(t, err)
	coll, err := s.Scan()
	require.NoError(t, err)

	require.Equal(t, 1, coll.Len())
	doc := coll.Documents()[0]
	assert.Equal(t, "sub/doc.md", doc.Path)
	assert.NotContains(t, doc.Path, "\\")
}

func TestScan_ExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "upper.MD", "# Upper\n")

	s, err := New(dir)
	require.NoError(t, err)
	coll, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, 1, coll.Len())
}

func TestScan_EmptyFolder(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	coll, err := s.Scan()
	require.NoError(t, err)
	assert.Zero(t, coll.Len())
}

func TestScan_FrontmatterParsed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", `---
title: My Document
description: A short summary
tags: [a, b]
---

# Heading

body text
`)

	s, err := New(dir)
	require.NoError(t, err)
	coll, err := s.Scan()
	require.NoError(t, err)

	doc, err := coll.Get("doc.md")
	require.NoError(t, err)
	assert.Equal(t, "My Document", doc.Frontmatter["title"])
	assert.Equal(t, "A short summary", doc.Frontmatter["description"])
	// Non-string values flatten to their printed form.
	assert.Equal(t, "[a b]", doc.Frontmatter["tags"])
	assert.Equal(t, "A short summary", doc.Description)
}

func TestScan_DescriptionFallsBackToFirstParagraph(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "# The **Title**\n\nSome _formatted_ first paragraph with a [link](url).\n")

	s, err := New(dir)
	require.NoError(t, err)
	coll, err := s.Scan()
	require.NoError(t, err)

	doc, err := coll.Get("doc.md")
	require.NoError(t, err)
	assert.Nil(t, doc.Frontmatter)
	assert.Equal(t, "The Title", doc.Description)
}

func TestScan_DescriptionCapped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", strings.Repeat("w", 500)+"\n")

	s, err := New(dir)
	require.NoError(t, err)
	coll, err := s.Scan()
	require.NoError(t, err)

	doc, err := coll.Get("doc.md")
	require.NoError(t, err)
	assert.Len(t, doc.Description, maxDescriptionLen)
}

func TestScan_MalformedFrontmatterIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "---\nkey: [unclosed\n---\n\nreal body here\n")

	s, err := New(dir)
	require.NoError(t, err)
	coll, err := s.Scan()
	require.NoError(t, err)

	doc, err := coll.Get("doc.md")
	require.NoError(t, err)
	assert.Nil(t, doc.Frontmatter)
	assert.Contains(t, doc.Content, "real body here")
}

func TestCollection_GetMissing(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	coll, err := s.Scan()
	require.NoError(t, err)

	_, err = coll.Get("absent.md")
	var notFound *types.DocumentNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "absent.md", notFound.Path)
}

func TestParseFrontmatter_AbsentBlock(t *testing.T) {
	assert.Nil(t, parseFrontmatter("# Just a heading\n\nbody\n"))
	// A delimiter later in the file is not frontmatter.
	assert.Nil(t, parseFrontmatter("intro\n---\nkey: value\n---\n"))
}

func TestDeriveDescription_SkipsBlankParagraphs(t *testing.T) {
	desc := deriveDescription("\n\n   \n\nactual first paragraph\n\nsecond\n", nil)
	assert.Equal(t, "actual first paragraph", desc)
}
