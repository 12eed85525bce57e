// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rotation cycles through extracted entries under an auto-dismiss
// countdown.
//
// An Engine is either Active or Expired. Tick consumes one unit of the
// countdown, Advance moves to the next entry and restores the full
// countdown, Dismiss ends the session. Expired is terminal: every event
// after it is ignored.
//
// Engine is not safe for concurrent use. A session drives it from a single
// event loop.
package rotation

import (
	"errors"
	"fmt"

	"github.com/pdiddy/wiktitrage/pkg/types"
)

// DefaultBudget is the countdown used when New is given a non-positive one.
const DefaultBudget = 7

// State is the engine state.
type State int

const (
	Active State = iota
	Expired
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sink receives the description of the current entry. The display and
// the clipboard are sinks.
type Sink interface {
	Publish(text string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text string) error

// Publish calls f(text).
func (f SinkFunc) Publish(text string) error { return f(text) }

// Engine holds the rotation state.
type Engine struct {
	entries   []types.Entry
	cursor    int
	budget    int
	remaining int
	state     State
	sinks     []Sink
}

// New returns an Active engine positioned on the first entry with the full
// countdown. entries must not be empty: callers select a non-empty page
// before building a session, so an empty slice is a programming error and
// New panics.
func New(entries []types.Entry, budget int, sinks ...Sink) *Engine {
	if len(entries) == 0 {
		panic("rotation: New called with no entries")
	}
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Engine{
		entries:   entries,
		budget:    budget,
		remaining: budget,
		state:     Active,
		sinks:     sinks,
	}
}

// Start publishes the first entry to every sink.
func (e *Engine) Start() error {
	return e.publish()
}

// Tick consumes one unit of the countdown and returns the resulting state.
// The engine expires when the countdown reaches zero.
func (e *Engine) Tick() State {
	if e.state == Expired {
		return e.state
	}
	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.state = Expired
	}
	return e.state
}

// Advance moves to the next entry, wrapping after the last one, restores
// the full countdown and publishes the new entry. A sink failure is
// reported but does not undo the move. Advance on an expired engine
// returns the current entry and does nothing else.
func (e *Engine) Advance() (types.Entry, error) {
	if e.state == Expired {
		return e.Current(), nil
	}
	e.cursor = (e.cursor + 1) % len(e.entries)
	e.remaining = e.budget
	return e.Current(), e.publish()
}

// Dismiss expires the engine regardless of the remaining countdown.
func (e *Engine) Dismiss() {
	e.state = Expired
}

// Current returns the entry at the cursor.
func (e *Engine) Current() types.Entry {
	return e.entries[e.cursor]
}

// Cursor returns the index of the current entry.
func (e *Engine) Cursor() int { return e.cursor }

// Len returns the number of entries.
func (e *Engine) Len() int { return len(e.entries) }

// Remaining returns the ticks left before expiry.
func (e *Engine) Remaining() int { return e.remaining }

// Budget returns the countdown restored by Advance.
func (e *Engine) Budget() int { return e.budget }

// State returns the engine state.
func (e *Engine) State() State { return e.state }

func (e *Engine) publish() error {
	text := e.Current().Description
	var errs []error
	for _, s := range e.sinks {
		if err := s.Publish(text); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("publishing entry %d: %w", e.cursor, errors.Join(errs...))
	}
	return nil
}
