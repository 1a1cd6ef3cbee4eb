// Package terminal is the raw TTY frontend: raw-mode input with switchable
// blocking, and a painter that draws whole frames with ANSI sequences.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/platform/style"
)

// ErrNotTerminal is returned when stdin is not a TTY.
var ErrNotTerminal = errors.New("terminal: stdin is not a terminal")

// Painter draws frames on an ANSI terminal.
type Painter struct {
	out     io.Writer
	palette style.Palette
}

// NewPainter creates a painter writing to out.
func NewPainter(out io.Writer, palette style.Palette) *Painter {
	return &Painter{out: out, palette: palette}
}

// Draw clears the screen, paints every row at its absolute position and
// then shows the cursor at cursor or hides it. Rows are positioned one by
// one because raw mode turns off newline translation.
func (p *Painter) Draw(frame *core.Screen, cursor core.Cursor) error {
	var sb strings.Builder
	sb.WriteString(ansi.HideCursor)
	sb.WriteString(ansi.EraseEntireScreen)

	for y := 0; y < frame.Height(); y++ {
		row := frame.Row(y)
		if strings.TrimSpace(row) == "" {
			continue
		}
		sb.WriteString(ansi.CursorPosition(1, y+1))
		sb.WriteString(p.palette.RenderRow(frame, y))
	}

	if cursor.Visible {
		sb.WriteString(ansi.CursorPosition(cursor.X+1, cursor.Y+1))
		sb.WriteString(ansi.ShowCursor)
	}

	if _, err := io.WriteString(p.out, sb.String()); err != nil {
		return fmt.Errorf("terminal: draw: %w", err)
	}
	return nil
}

// Echo shows one typed command character. Erase keys rub out the previous
// character on screen.
func (p *Painter) Echo(ch byte) error {
	var s string
	switch {
	case core.IsErase(ch):
		s = "\b \b"
	case core.IsPrintable(ch):
		s = string(rune(ch))
	default:
		return nil
	}
	if _, err := io.WriteString(p.out, s); err != nil {
		return fmt.Errorf("terminal: echo: %w", err)
	}
	return nil
}

// Reset shows the cursor, clears the screen and homes the cursor, leaving
// the shell usable after a game.
func (p *Painter) Reset() error {
	_, err := io.WriteString(p.out, ansi.ShowCursor+ansi.EraseEntireScreen+ansi.CursorPosition(1, 1))
	return err
}
