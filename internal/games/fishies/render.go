package fishies

import (
	"fmt"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Glyphs.
const (
	FishGlyph    = "><((('>"
	PipeGlyph    = "****"
	PowerUpGlyph = "O"
)

// Frame layout.
const (
	FrameWidth  = NumCols + PipeWidth // a pipe at the right edge is still drawn whole
	FrameHeight = NumRows + 1

	HUDCol    = 70
	ScoreRow  = 37
	PromptRow = 21
	PromptCol = 1
	Prompt    = "Command:"
)

// NewFrame allocates a screen large enough for the playfield and HUD.
func NewFrame() *core.Screen {
	return core.NewScreen(FrameWidth, FrameHeight)
}

// Render draws the current state into dst, clearing it first.
func (s *Session) Render(dst *core.Screen) {
	st := s.state
	dst.Clear()

	if st.Fish.Alive {
		dst.DrawTextColor(st.Fish.Position.Col, st.Fish.Position.Row, FishGlyph, s.theme.Fish)
	}

	// HUD
	dst.DrawTextColor(HUDCol, ScoreRow, fmt.Sprintf("Score: %d", st.Score), s.theme.Text)
	dst.DrawTextColor(HUDCol, ScoreRow+1, fmt.Sprintf("Press '%c' to move up", s.keys.Up), s.theme.Text)
	dst.DrawTextColor(HUDCol, ScoreRow+2, fmt.Sprintf("Press '%c' to move down", s.keys.Down), s.theme.Text)
	dst.DrawTextColor(HUDCol, ScoreRow+3, fmt.Sprintf("Press '%c' to quit", s.keys.Quit), s.theme.Text)

	for _, p := range st.Pipes.Pipes() {
		drawPipe(dst, p, s.theme.Pipe)
	}

	if p := st.PowerUp; p != nil && !p.Collected && PowerUpActive(st.Ticks) {
		dst.DrawTextColor(p.Position.Col, p.Position.Row, PowerUpGlyph, s.theme.PowerUp)
	}

	if s.ctrl.Mode() == ModeCommand {
		dst.DrawTextColor(PromptCol, PromptRow, Prompt+" "+s.ctrl.Line(), s.theme.Text)
	}
}

// drawPipe paints the solid rows of a pipe, leaving its gap open.
func drawPipe(dst *core.Screen, p Pipe, color core.Color) {
	for i := 0; i < PipeHeight; i++ {
		row := p.Position.Row + i
		if !p.Blocks(row) {
			continue
		}
		dst.DrawTextColor(p.Position.Col, row, PipeGlyph, color)
	}
}

// Cursor returns where the terminal cursor belongs after a frame: at the end
// of the command line in command mode, hidden otherwise.
func (s *Session) Cursor() core.Cursor {
	if s.ctrl.Mode() != ModeCommand {
		return core.Cursor{}
	}
	return core.Cursor{
		Visible: true,
		X:       PromptCol + len(Prompt) + 1 + len(s.ctrl.Line()),
		Y:       PromptRow,
	}
}
