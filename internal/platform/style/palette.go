// Package style maps core colors to lipgloss styles and turns screen
// buffers into styled text. Both frontends share it.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette holds one style per color, bound to a renderer.
// Over SSH each session needs its own renderer so color detection follows
// the client terminal, not the server's.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPalette builds a palette for r. A nil renderer uses lipgloss's default.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Palette{
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
		plain:  r.NewStyle(),
	}
	for c, code := range colorCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// Style returns the style for c, unstyled for unknown colors.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.plain
}

// RenderRow converts one row of s to styled text.
// Adjacent cells with the same color share one escape sequence.
func (p Palette) RenderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	x := 0
	for x < s.Width() {
		startColor := s.GetCell(x, y).Color

		var run strings.Builder
		for x < s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != startColor {
				break
			}
			run.WriteRune(cell.Rune)
			x++
		}

		if startColor == core.ColorDefault {
			sb.WriteString(run.String())
			continue
		}
		sb.WriteString(p.Style(startColor).Render(run.String()))
	}
	return sb.String()
}

// RenderScreen converts the whole buffer to styled text, rows joined with
// newlines.
func (p Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(p.RenderRow(s, y))
	}
	return sb.String()
}
