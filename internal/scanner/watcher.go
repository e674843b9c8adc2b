package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// FileOperation classifies a watched file change.
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
)

// FileEvent reports a change to a markdown file under the watched root.
type FileEvent struct {
	Path string
	Op   FileOperation
}

// Watcher monitors a knowledge-base folder for markdown changes so the host
// can invalidate chunk caches and rescan. fsnotify does not watch
// recursively, so every subdirectory is registered, and directories created
// while watching are added as they appear.
type Watcher struct {
	fs   *fsnotify.Watcher
	root string
}

// NewWatcher creates a watcher covering root and all its subdirectories.
func NewWatcher(root string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = w.Close()
		return nil, err
	}

	return &Watcher{fs: w, root: root}, nil
}

// Watch emits markdown file events until the context is canceled or the
// watcher is closed.
func (w *Watcher) Watch(ctx context.Context) <-chan FileEvent {
	events := make(chan FileEvent, 100)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				w.handle(ctx, event, events)
			case _, ok := <-w.fs.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event, events chan<- FileEvent) {
	// New subdirectories must be registered to keep coverage recursive.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.fs.Add(event.Name)
			return
		}
	}

	if !strings.EqualFold(filepath.Ext(event.Name), MarkdownExtension) {
		return
	}

	var op FileOperation
	switch {
	case event.Op&fsnotify.Create != 0:
		op = FileCreated
	case event.Op&fsnotify.Write != 0:
		op = FileModified
	case event.Op&fsnotify.Remove != 0 || event.Op&fsnotify.Rename != 0:
		op = FileDeleted
	default:
		return
	}

	select {
	case events <- FileEvent{Path: event.Name, Op: op}:
	case <-ctx.Done():
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
