// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session runs the single event loop that drives a rotation
// engine from timer ticks and user signals.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/pdiddy/wiktitrage/internal/logging"
	"github.com/pdiddy/wiktitrage/internal/rotation"
)

// DefaultInterval is the tick period used when Options.Interval is zero.
const DefaultInterval = time.Second

// Signal is a user interaction.
type Signal int

const (
	// Confirm advances to the next entry.
	Confirm Signal = iota
	// Dismiss ends the session.
	Dismiss
)

func (s Signal) String() string {
	if s == Confirm {
		return "confirm"
	}
	return "dismiss"
}

// Reason tells why a session ended.
type Reason string

const (
	ReasonTimeout   Reason = "timeout"
	ReasonDismissed Reason = "dismissed"
	ReasonInputGone Reason = "input closed"
	ReasonCancelled Reason = "cancelled"
)

// Result summarises a finished session.
type Result struct {
	Reason   Reason
	Advances int
	Ticks    int
}

// Options configures Run.
type Options struct {
	// Interval is the tick period. Ignored when Ticks is set.
	Interval time.Duration

	// Ticks replaces the internal ticker. Tests use it to drive time.
	Ticks <-chan time.Time

	Logger *slog.Logger
}

// Run drives engine until it expires or ctx is cancelled. It is the only
// caller of engine methods while it runs. A closed signals channel is
// treated as a dismissal. Run returns ctx.Err() on cancellation and nil
// on every other ending.
func Run(ctx context.Context, engine *rotation.Engine, signals <-chan Signal, opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	ticks := opts.Ticks
	if ticks == nil {
		interval := opts.Interval
		if interval <= 0 {
			interval = DefaultInterval
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	var res Result
	for {
		select {
		case <-ctx.Done():
			res.Reason = ReasonCancelled
			return res, ctx.Err()

		case <-ticks:
			res.Ticks++
			if engine.Tick() == rotation.Expired {
				log.Debug("countdown elapsed", slog.Int("ticks", res.Ticks))
				res.Reason = ReasonTimeout
				return res, nil
			}

		case sig, ok := <-signals:
			if !ok {
				engine.Dismiss()
				res.Reason = ReasonInputGone
				return res, nil
			}
			switch sig {
			case Confirm:
				entry, err := engine.Advance()
				res.Advances++
				if err != nil {
					log.Warn("publishing entry failed", slog.String("error", err.Error()))
				}
				log.Debug("advanced",
					slog.Int("cursor", engine.Cursor()),
					slog.String("language", entry.LanguageName()),
				)
			default:
				engine.Dismiss()
				res.Reason = ReasonDismissed
				return res, nil
			}
		}
	}
}
