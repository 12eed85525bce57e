// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package instance keeps a single wiktitrage session running per user.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning is returned when another process holds the lock.
var ErrAlreadyRunning = errors.New("another wiktitrage session is already running")

const lockName = "wiktitrage.lock"

// DefaultPath returns the lock path: $XDG_RUNTIME_DIR/wiktitrage.lock,
// or the same name in the temp directory.
func DefaultPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, lockName)
	}
	return filepath.Join(os.TempDir(), lockName)
}

// Lock is a held single-instance lock.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the lock at path without blocking.
func Acquire(path string) (*Lock, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	return &Lock{fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string { return l.fl.Path() }

// Release frees the lock.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
