package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_MissingFolder(t *testing.T) {
	_, err := NewServer(Options{Folder: filepath.Join(t.TempDir(), "nope")})
	assert.ErrorContains(t, err, "failed to open knowledge base")
}

func TestNewServer_DefaultName(t *testing.T) {
	s, err := NewServer(Options{Folder: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, DefaultServerName, s.name)
}

func TestServer_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# First\n\noriginal text\n"), 0o644))

	s, err := NewServer(Options{Folder: dir})
	require.NoError(t, err)

	result, err := s.handleSearchMarkdown(context.Background(), toolRequest("search_markdown", map[string]interface{}{
		"query": "original",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Found 1 snippet(s)")

	// Change the file on disk; the server still serves the old scan.
	require.NoError(t, os.WriteFile(path, []byte("# First\n\nreplacement text\n"), 0o644))

	require.NoError(t, s.Reload())

	result, err = s.handleSearchMarkdown(context.Background(), toolRequest("search_markdown", map[string]interface{}{
		"query": "original",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "No results found")

	result, err = s.handleSearchMarkdown(context.Background(), toolRequest("search_markdown", map[string]interface{}{
		"query": "replacement",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Found 1 snippet(s)")
}

func TestServer_ReloadPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewServer(Options{Folder: dir})
	require.NoError(t, err)

	result, err := s.handleListFiles(context.Background(), toolRequest("list_files", map[string]interface{}{}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), `"count": 0`)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "late.md"), []byte("# Late\n\narrived after startup\n"), 0o644))
	require.NoError(t, s.Reload())

	result, err = s.handleListFiles(context.Background(), toolRequest("list_files", map[string]interface{}{}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, `"count": 1`)
	assert.Contains(t, text, "late.md")
}
