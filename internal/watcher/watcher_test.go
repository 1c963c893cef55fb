package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockConverter records converted paths.
type mockConverter struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (m *mockConverter) Convert(_ context.Context, path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, path)
	if m.err != nil {
		return "", m.err
	}
	return path + ".out", nil
}

func TestIsTranscript(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"talk.trs", true},
		{"/data/talk.trs", true},
		{"/data/TALK.TRS", true},
		{"/data/.talk.trs", false},
		{"/data/talk.TextGrid", false},
		{"/data/talk.trs.swp", false},
		{"/data/trs", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, isTranscript(tt.path))
		})
	}
}

func TestHandleEvent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "talk.trs")
	require.NoError(t, os.WriteFile(file, []byte("<Trans/>"), 0644))
	subdir := filepath.Join(dir, "nested.trs")
	require.NoError(t, os.Mkdir(subdir, 0755))

	tests := []struct {
		name     string
		path     string
		op       fsnotify.Op
		expected bool
	}{
		{"create", file, fsnotify.Create, true},
		{"write", file, fsnotify.Write, true},
		{"write and chmod", file, fsnotify.Write | fsnotify.Chmod, true},
		{"chmod only", file, fsnotify.Chmod, false},
		{"remove", file, fsnotify.Remove, false},
		{"rename", file, fsnotify.Rename, false},
		{"directory", subdir, fsnotify.Create, false},
		{"vanished file", filepath.Join(dir, "gone.trs"), fsnotify.Create, false},
		{"other extension", filepath.Join(dir, "talk.txt"), fsnotify.Write, false},
	}

	w := New(dir, &mockConverter{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := w.handleEvent(fsnotify.Event{Name: tt.path, Op: tt.op})
			assert.Equal(t, tt.expected, ok)
			if tt.expected {
				assert.Equal(t, tt.path, path)
			}
		})
	}
}

func TestWatcher_Watch(t *testing.T) {
	t.Run("converts new transcripts", func(t *testing.T) {
		dir := t.TempDir()
		conv := &mockConverter{}
		w := New(dir, conv)
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		results, err := w.Watch(ctx)
		require.NoError(t, err)

		file := filepath.Join(dir, "talk.trs")
		go func() {
			time.Sleep(50 * time.Millisecond)
			os.WriteFile(file, []byte("<Trans/>"), 0644)
		}()

		select {
		case r := <-results:
			assert.Equal(t, file, r.Path)
			assert.Equal(t, file+".out", r.Output)
			assert.NoError(t, r.Err)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for conversion")
		}
	})

	t.Run("reports conversion errors", func(t *testing.T) {
		dir := t.TempDir()
		convErr := errors.New("parse failed")
		w := New(dir, &mockConverter{err: convErr})
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		results, err := w.Watch(ctx)
		require.NoError(t, err)

		go func() {
			time.Sleep(50 * time.Millisecond)
			os.WriteFile(filepath.Join(dir, "bad.trs"), []byte("<Trans"), 0644)
		}()

		select {
		case r := <-results:
			assert.ErrorIs(t, r.Err, convErr)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for conversion")
		}
	})

	t.Run("closes channel when context is cancelled", func(t *testing.T) {
		w := New(t.TempDir(), &mockConverter{})
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		results, err := w.Watch(ctx)
		require.NoError(t, err)

		cancel()

		select {
		case _, ok := <-results:
			if ok {
				for range results {
				}
			}
		case <-time.After(time.Second):
			t.Fatal("channel did not close after cancellation")
		}
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		w := New("/non/existent/path", &mockConverter{})

		results, err := w.Watch(context.Background())

		assert.Error(t, err)
		assert.Nil(t, results)
		assert.Contains(t, err.Error(), "watch dir error")
	})

	t.Run("returns error for a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "talk.trs")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		_, err := New(file, &mockConverter{}).Watch(context.Background())
		assert.ErrorContains(t, err, "not a directory")
	})

	t.Run("returns error when closed", func(t *testing.T) {
		w := New(t.TempDir(), &mockConverter{})
		require.NoError(t, w.Close())
		require.NoError(t, w.Close())

		results, err := w.Watch(context.Background())

		assert.Nil(t, results)
		assert.ErrorContains(t, err, "closed")
	})

	t.Run("rejects a second watch", func(t *testing.T) {
		w := New(t.TempDir(), &mockConverter{})
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		_, err := w.Watch(ctx)
		require.NoError(t, err)
		_, err = w.Watch(ctx)
		assert.ErrorContains(t, err, "already running")
	})
}
