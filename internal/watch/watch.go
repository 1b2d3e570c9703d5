// Package watch regenerates labels whenever the parts file or template
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"binlabel/internal/logging"
)

const defaultDebounce = 300 * time.Millisecond

type Options struct {
	Paths    []string
	Debounce time.Duration
}

// Watcher runs a callback after any watched file changes, coalescing bursts
// of filesystem events into a single run.
type Watcher struct {
	opts     Options
	logger   *logging.Logger
	onChange func(context.Context) error
}

func New(opts Options, logger *logging.Logger, onChange func(context.Context) error) *Watcher {
	if logger == nil {
		panic("watch.New: logger must not be nil")
	}
	if onChange == nil {
		panic("watch.New: onChange must not be nil")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	return &Watcher{opts: opts, logger: logger, onChange: onChange}
}

// RunContext watches until the context is canceled. Callback failures are
// reported and watching continues; only watcher setup can fail.
func (w *Watcher) RunContext(ctx context.Context) error {
	// Editors replace files with write-then-rename, so watch the parent
	// directories and filter events down to the paths that matter.
	watched := make(map[string]struct{}, len(w.opts.Paths))
	dirs := map[string]struct{}{}
	for _, path := range w.opts.Paths {
		if path == "" {
			continue
		}
		clean := filepath.Clean(path)
		watched[clean] = struct{}{}
		dirs[filepath.Dir(clean)] = struct{}{}
	}
	if len(watched) == 0 {
		return fmt.Errorf("nothing to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to initialize fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		w.logger.Debugf("watching directory: %s", dir)
	}
	w.logger.Info("watching for changes", logging.Field("files", len(watched)))

	debounce := time.NewTimer(w.opts.Debounce)
	defer debounce.Stop()
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("stopping watcher: context canceled")
			return nil
		case event := <-watcher.Events:
			w.logger.Debugf("fsnotify event: op=%s path=%s", event.Op.String(), event.Name)
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if _, ok := watched[filepath.Clean(event.Name)]; !ok {
				continue
			}
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(w.opts.Debounce)
		case err := <-watcher.Errors:
			if err != nil {
				w.logger.Warn("watcher error", logging.Field("error", err))
			}
		case <-debounce.C:
			w.logger.Verbose("change detected, regenerating")
			if err := w.onChange(ctx); err != nil {
				w.logger.Error("regeneration failed", logging.Field("error", err))
			}
		}
	}
}
