// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clipboard binds the system clipboard. It supplies the search
// term at startup and receives every entry the session shows.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("system clipboard is not available")

// Clipboard reads and publishes clipboard text.
type Clipboard interface {
	Read() (string, error)
	Publish(text string) error
}

// System is the platform clipboard.
type System struct{}

// Available reports whether the platform clipboard can be used. On Linux
// it needs xclip, xsel, wl-clipboard or termux-api.
func Available() bool {
	return !clipboard.Unsupported
}

// Read returns the clipboard text.
func (System) Read() (string, error) {
	if !Available() {
		return "", ErrUnsupported
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return s, nil
}

// Publish replaces the clipboard text.
func (System) Publish(text string) error {
	if !Available() {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard used when the system one is missing.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// Read returns the stored text.
func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Publish stores text.
func (m *Memory) Publish(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Default returns the system clipboard when available and an empty
// Memory clipboard otherwise.
func Default() Clipboard {
	if Available() {
		return System{}
	}
	return NewMemory("")
}
