// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/pdiddy/wiktitrage/internal/session"
)

// Classify maps one input byte to a signal: Enter confirms, anything
// else dismisses.
func Classify(b byte) session.Signal {
	if b == '\r' || b == '\n' {
		return session.Confirm
	}
	return session.Dismiss
}

// ReadSignals reads r one byte at a time and sends the matching signal on
// out until r fails or done is closed. out is closed on return, which the
// session treats as a dismissal.
func ReadSignals(r io.Reader, out chan<- session.Signal, done <-chan struct{}) {
	defer close(out)
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			select {
			case out <- Classify(buf[0]):
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// Keys reads key presses from a terminal in raw mode.
type Keys struct {
	in    *os.File
	state *term.State
	done  chan struct{}
}

// OpenKeys switches in to raw mode so single key presses are delivered
// without waiting for a newline. in must be a terminal.
func OpenKeys(in *os.File) (*Keys, error) {
	if !IsTerminal(in) {
		return nil, errors.New("standard input is not a terminal")
	}
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	return &Keys{in: in, state: state, done: make(chan struct{})}, nil
}

// Signals starts reading keys and returns the signal channel.
func (k *Keys) Signals() <-chan session.Signal {
	ch := make(chan session.Signal, 1)
	go ReadSignals(k.in, ch, k.done)
	return ch
}

// Close stops forwarding signals and restores the terminal state.
func (k *Keys) Close() error {
	select {
	case <-k.done:
		return nil
	default:
		close(k.done)
	}
	if err := term.Restore(int(k.in.Fd()), k.state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}
