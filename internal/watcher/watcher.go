// Package watcher re-converts transcripts when they change on disk.
//
// A Watcher observes a single directory (not recursively) through fsnotify
// and converts each .trs file that is created or written. Hidden files are
// ignored, as are removals, renames and permission changes.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/logger"
)

// Converter converts one transcript file and returns the output path.
type Converter interface {
	Convert(ctx context.Context, path string) (string, error)
}

// Result reports the outcome of one conversion.
type Result struct {
	Path   string
	Output string
	Err    error
}

// Watcher converts transcripts in a directory as they change.
type Watcher struct {
	dir       string
	converter Converter

	mu     sync.Mutex
	closed bool
	fsw    *fsnotify.Watcher
}

// New creates a watcher for dir.
func New(dir string, converter Converter) *Watcher {
	return &Watcher{dir: dir, converter: converter}
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Watch starts watching and returns a channel of conversion results.
// The channel is closed when ctx is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) (<-chan Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, errors.New("watcher is closed")
	}
	if w.fsw != nil {
		return nil, errors.New("watcher already running")
	}

	info, err := os.Stat(w.dir)
	if err != nil {
		return nil, fmt.Errorf("watch dir error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch dir error: %s is not a directory", w.dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.fsw = fsw

	results := make(chan Result)
	go w.loop(ctx, fsw, results)
	return results, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, results chan<- Result) {
	defer close(results)
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			path, ok := w.handleEvent(event)
			if !ok {
				continue
			}
			result := w.convert(ctx, path)
			select {
			case results <- result:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Error("watch %s: %v", w.dir, err)
		}
	}
}

func (w *Watcher) convert(ctx context.Context, path string) Result {
	logger.Debug("converting %s", path)
	out, err := w.converter.Convert(ctx, path)
	return Result{Path: path, Output: out, Err: err}
}

// handleEvent returns the transcript path to convert for an event, if any.
func (w *Watcher) handleEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if !isTranscript(event.Name) {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return event.Name, true
}

// isTranscript reports whether path names a visible .trs file.
func isTranscript(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), domain.TranscriptExtension)
}
