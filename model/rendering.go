package model

import (
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Default display characters, substituted by Render when a caller passes a
// zero rune for either role.
const (
	DefaultAliveChar = 'X'
	DefaultDeadChar  = 'O'
)

// ansiClear homes the cursor and erases the display.
const ansiClear = "\x1b[H\x1b[2J"

// Render serializes the board to text: one line per row, cols characters per
// line, rows joined by single newlines, no leading or trailing newline. Live
// cells render as alive and dead cells as dead; a zero rune selects the
// package default for that role.
func (g *Grid) Render(alive, dead rune) (string, error) {
	if g.cells == nil {
		return "", errors.Wrap(ErrNotInitialized, "[Render] no cell storage")
	}
	if alive == 0 {
		alive = DefaultAliveChar
	}
	if dead == 0 {
		dead = DefaultDeadChar
	}

	n := len(g.cells)
	if g.rows > math.MaxInt-n {
		return "", errors.Wrapf(ErrNoMemory, "[Render] cannot size %dx%d text buffer", g.rows, g.cols)
	}

	var b strings.Builder
	b.Grow(n + g.rows)
	for y := 0; y < g.rows; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.cols; x++ {
			if g.cells[y*g.cols+x] {
				b.WriteRune(alive)
			} else {
				b.WriteRune(dead)
			}
		}
	}
	return b.String(), nil
}

// TerminalRenderer writes rendered generations to a terminal-like writer.
// The zero value is not usable; construct with NewTerminalRenderer.
type TerminalRenderer struct {
	out   io.Writer
	alive rune
	dead  rune
}

// NewTerminalRenderer returns a renderer targeting out with the given
// display characters; zero runes select the package defaults.
func NewTerminalRenderer(out io.Writer, alive, dead rune) *TerminalRenderer {
	return &TerminalRenderer{out: out, alive: alive, dead: dead}
}

// Display renders the grid and writes it to the terminal, followed by a
// newline so the shell prompt or status line never lands mid-row.
func (r *TerminalRenderer) Display(g *Grid) error {
	text, err := g.Render(r.alive, r.dead)
	if err != nil {
		return errors.Wrap(err, "[Display] failed to render grid")
	}
	if _, err := io.WriteString(r.out, text+"\n"); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// Clear erases the terminal screen and homes the cursor.
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, ansiClear); err != nil {
		return errors.Wrap(err, "[Clear] failed to write clear sequence")
	}
	return nil
}
