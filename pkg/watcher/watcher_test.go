package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatchFileDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.json")
	other := filepath.Join(dir, "other.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var calls int32
	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- WatchFile(ctx, path, 200*time.Millisecond, func() {
			atomic.AddInt32(&calls, 1)
			changed <- struct{}{}
		})
	}()
	// give the watcher time to register the directory
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`[{"id":1}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`[{"id":2}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatalf("expected a change callback")
	}
	time.Sleep(500 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected 1 callback for two quick writes, got %d", n)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected watcher to stop on cancel")
	}
}

func TestWatchFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "levels.json")
	if err := WatchFile(context.Background(), path, time.Millisecond, func() {}); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}
