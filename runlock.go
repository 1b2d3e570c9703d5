package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

type runLock struct {
	lock *flock.Flock
}

func (l *runLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if !l.lock.Locked() {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("unlock run lock: %w", err)
	}
	return nil
}

// acquireRunLock guards the output directory so two runs do not write the
// same labels at once. Runs targeting different directories may overlap.
func acquireRunLock(outputDir string) (*runLock, bool, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, false, fmt.Errorf("create output directory: %w", err)
	}
	f := flock.New(filepath.Join(outputDir, ".binlabel.lock"))
	locked, err := f.TryLock()
	if err != nil {
		return nil, false, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, true, nil
	}
	return &runLock{lock: f}, false, nil
}
