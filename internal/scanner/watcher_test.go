package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForEvent drains the channel until an event for path arrives or the
// timeout elapses. Editors and filesystems vary in how many raw events one
// change produces, so tests match on path rather than counting.
func waitForEvent(t *testing.T, events <-chan FileEvent, path string) FileEvent {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-events:
			require.True(t, ok, "event channel closed while waiting for %s", path)
			if event.Path == path {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event on %s", path)
		}
	}
}

func TestWatcher_MarkdownCreate(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	path := filepath.Join(dir, "new.md")
	require.NoError(t, os.WriteFile(path, []byte("# New\n"), 0o644))

	event := waitForEvent(t, events, path)
	assert.Equal(t, FileCreated, event.Op)
}

func TestWatcher_MarkdownModifyAndDelete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("v1\n"), 0o644))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	require.NoError(t, os.WriteFile(path, []byte("v2 longer content\n"), 0o644))
	waitForEvent(t, events, path)

	require.NoError(t, os.Remove(path))
	for {
		event := waitForEvent(t, events, path)
		if event.Op == FileDeleted {
			break
		}
	}
}

func TestWatcher_IgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	mdPath := filepath.Join(dir, "real.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("# Real\n"), 0o644))

	// Only the markdown file surfaces; the .txt write is filtered out.
	event := waitForEvent(t, events, mdPath)
	assert.Equal(t, FileCreated, event.Op)
}

func TestWatcher_CoversNewSubdirectories(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	// Give the watcher a moment to register the new directory before
	// writing into it.
	time.Sleep(200 * time.Millisecond)

	path := filepath.Join(sub, "inner.md")
	require.NoError(t, os.WriteFile(path, []byte("# Inner\n"), 0o644))

	waitForEvent(t, events, path)
}

func TestWatcher_ContextCancelClosesChannel(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events := w.Watch(ctx)
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("event channel did not close after cancellation")
	}
}
