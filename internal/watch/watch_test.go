package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"binlabel/internal/logging"
)

func newTestLogger() *logging.Logger {
	logger := logging.New(slog.LevelDebug)
	logger.SetTerminalOutputEnabled(false)
	return logger
}

func startWatcher(t *testing.T, w *Watcher) (cancel func()) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.RunContext(ctx) }()
	// Give the watcher a moment to register before the test touches files.
	time.Sleep(100 * time.Millisecond)
	return func() {
		stop()
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("RunContext returned %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("RunContext did not stop after cancel")
		}
	}
}

func TestNew_DefaultsDebounce(t *testing.T) {
	w := New(Options{Paths: []string{"parts.csv"}}, newTestLogger(), func(context.Context) error { return nil })
	if w.opts.Debounce != defaultDebounce {
		t.Fatalf("debounce = %v, want %v", w.opts.Debounce, defaultDebounce)
	}
}

func TestRunContext_NothingToWatch(t *testing.T) {
	w := New(Options{}, newTestLogger(), func(context.Context) error { return nil })
	if err := w.RunContext(context.Background()); err == nil {
		t.Fatalf("expected error for empty watch list")
	}
}

func TestRunContext_FiresAfterChange(t *testing.T) {
	dir := t.TempDir()
	partsPath := filepath.Join(dir, "parts.csv")
	if err := os.WriteFile(partsPath, []byte("name,description\n"), 0o644); err != nil {
		t.Fatalf("write parts: %v", err)
	}

	fired := make(chan struct{}, 8)
	w := New(Options{Paths: []string{partsPath}, Debounce: 50 * time.Millisecond}, newTestLogger(),
		func(context.Context) error {
			fired <- struct{}{}
			return nil
		})
	stop := startWatcher(t, w)
	defer stop()

	if err := os.WriteFile(partsPath, []byte("name,description\nM3x8,SHCS\n"), 0o644); err != nil {
		t.Fatalf("modify parts: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not fire after file change")
	}
}

func TestRunContext_SeesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	partsPath := filepath.Join(dir, "parts.csv")
	if err := os.WriteFile(partsPath, []byte("name,description\n"), 0o644); err != nil {
		t.Fatalf("write parts: %v", err)
	}

	fired := make(chan struct{}, 8)
	w := New(Options{Paths: []string{partsPath}, Debounce: 50 * time.Millisecond}, newTestLogger(),
		func(context.Context) error {
			fired <- struct{}{}
			return nil
		})
	stop := startWatcher(t, w)
	defer stop()

	replacement := filepath.Join(dir, "parts.csv.tmp")
	if err := os.WriteFile(replacement, []byte("name,description\nM4,nut\n"), 0o644); err != nil {
		t.Fatalf("write replacement: %v", err)
	}
	if err := os.Rename(replacement, partsPath); err != nil {
		t.Fatalf("rename over parts: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not fire after atomic replace")
	}
}

func TestRunContext_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	partsPath := filepath.Join(dir, "parts.csv")
	if err := os.WriteFile(partsPath, []byte("name,description\n"), 0o644); err != nil {
		t.Fatalf("write parts: %v", err)
	}

	var fires atomic.Int64
	w := New(Options{Paths: []string{partsPath}, Debounce: 200 * time.Millisecond}, newTestLogger(),
		func(context.Context) error {
			fires.Add(1)
			return nil
		})
	stop := startWatcher(t, w)
	defer stop()

	const writes = 5
	for i := 0; i < writes; i++ {
		content := fmt.Sprintf("name,description\nrow%d,part\n", i)
		if err := os.WriteFile(partsPath, []byte(content), 0o644); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(time.Second)

	got := fires.Load()
	if got == 0 {
		t.Fatalf("burst of writes never fired the callback")
	}
	if got >= writes {
		t.Fatalf("fires = %d, want bursts coalesced below %d", got, writes)
	}
}

func TestRunContext_KeepsWatchingAfterCallbackError(t *testing.T) {
	dir := t.TempDir()
	partsPath := filepath.Join(dir, "parts.csv")
	if err := os.WriteFile(partsPath, []byte("name,description\n"), 0o644); err != nil {
		t.Fatalf("write parts: %v", err)
	}

	logger := newTestLogger()
	var loggedErrors atomic.Int64
	unsubscribe := logger.Subscribe(func(event logging.Event) {
		if event.Level >= slog.LevelError {
			loggedErrors.Add(1)
		}
	})
	defer unsubscribe()

	fired := make(chan struct{}, 8)
	var calls atomic.Int64
	w := New(Options{Paths: []string{partsPath}, Debounce: 50 * time.Millisecond}, logger,
		func(context.Context) error {
			fired <- struct{}{}
			if calls.Add(1) == 1 {
				return fmt.Errorf("first run fails")
			}
			return nil
		})
	stop := startWatcher(t, w)
	defer stop()

	for i := 0; i < 2; i++ {
		content := fmt.Sprintf("name,description\nattempt%d,part\n", i)
		if err := os.WriteFile(partsPath, []byte(content), 0o644); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
		select {
		case <-fired:
		case <-time.After(5 * time.Second):
			t.Fatalf("watcher did not fire on change %d", i)
		}
	}

	if loggedErrors.Load() == 0 {
		t.Fatalf("callback failure was not reported")
	}
}

func TestRunContext_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	partsPath := filepath.Join(dir, "parts.csv")
	if err := os.WriteFile(partsPath, []byte("name,description\n"), 0o644); err != nil {
		t.Fatalf("write parts: %v", err)
	}

	var fires atomic.Int64
	w := New(Options{Paths: []string{partsPath}, Debounce: 50 * time.Millisecond}, newTestLogger(),
		func(context.Context) error {
			fires.Add(1)
			return nil
		})
	stop := startWatcher(t, w)
	defer stop()

	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("unrelated"), 0o644); err != nil {
		t.Fatalf("write unrelated: %v", err)
	}
	time.Sleep(400 * time.Millisecond)

	if got := fires.Load(); got != 0 {
		t.Fatalf("fires = %d, want 0 for unrelated file", got)
	}
}
