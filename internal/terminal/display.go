// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package terminal hosts a rotation session in a terminal: a display sink
// that renders the current entry and a key reader that turns key presses
// into session signals.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	ellipsis     = "…"
)

// Display renders one description at a time, word-wrapped and centered,
// on at most a fixed number of lines. On a terminal each Publish redraws
// over the previous text; elsewhere lines are appended.
type Display struct {
	out   io.Writer
	lines int
	width int
	tty   bool
	drawn int
}

// NewDisplay returns a display writing to out. width 0 uses the terminal
// width of out, or 80 columns when out is not a terminal.
func NewDisplay(out io.Writer, lines, width int) *Display {
	if lines < 1 {
		lines = 1
	}
	d := &Display{out: out, lines: lines, width: width}
	if f, ok := out.(*os.File); ok && IsTerminal(f) {
		d.tty = true
		if d.width == 0 {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
				d.width = w
			}
		}
	}
	if d.width <= 0 {
		d.width = defaultWidth
	}
	return d
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Publish draws s, replacing the previous text on a terminal.
func (d *Display) Publish(s string) error {
	var b strings.Builder
	if d.tty && d.drawn > 0 {
		fmt.Fprintf(&b, "\r\x1b[%dA\x1b[J", d.drawn)
	}
	rows := Layout(s, d.width, d.lines)
	for _, row := range rows {
		b.WriteString(row)
		if d.tty {
			// Raw mode does not translate \n into \r\n.
			b.WriteString("\r\n")
		} else {
			b.WriteString("\n")
		}
	}
	if _, err := io.WriteString(d.out, b.String()); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	d.drawn = len(rows)
	return nil
}

// Clear erases the text drawn by the last Publish on a terminal.
func (d *Display) Clear() error {
	if !d.tty || d.drawn == 0 {
		return nil
	}
	_, err := fmt.Fprintf(d.out, "\r\x1b[%dA\x1b[J", d.drawn)
	d.drawn = 0
	return err
}

// Layout wraps s to width columns, keeps at most maxLines lines and
// centers each one. When text is cut, the last kept line ends with an
// ellipsis. Trailing padding is trimmed.
func Layout(s string, width, maxLines int) []string {
	if width < 2 {
		width = 2
	}
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return []string{""}
	}

	rows := strings.Split(text.WrapSoft(s, width), "\n")
	if maxLines > 0 && len(rows) > maxLines {
		rows = rows[:maxLines]
		last := strings.TrimRight(rows[maxLines-1], " ")
		if runewidth.StringWidth(last)+runewidth.StringWidth(ellipsis) <= width {
			last += ellipsis
		} else {
			last = runewidth.Truncate(last, width, ellipsis)
		}
		rows[maxLines-1] = last
	}

	for i, row := range rows {
		row = strings.TrimSpace(row)
		rows[i] = strings.TrimRight(text.AlignCenter.Apply(row, width), " ")
	}
	return rows
}
