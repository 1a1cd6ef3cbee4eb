package fishies

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Terminal is the raw input side of the terminal.
type Terminal interface {
	// ReadChar returns the next character. In non-blocking mode it returns
	// core.NoInput when nothing is pending.
	ReadChar() (byte, error)
	// SetBlockingMode switches reads between blocking and non-blocking.
	SetBlockingMode(blocking bool) error
	// QueryTerminalSize returns the window size in cells.
	QueryTerminalSize() (rows, cols int, err error)
}

// Renderer is the output side of the terminal.
type Renderer interface {
	// Draw clears the terminal and paints frame, then places the cursor.
	Draw(frame *core.Screen, cursor core.Cursor) error
	// Echo shows a command-line character as it is typed.
	Echo(ch byte) error
}

// Smallest terminal the playfield fits in.
const (
	MinRows = 30
	MinCols = 50
)

// ErrTerminalTooSmall is returned by Run when the window cannot host the game.
var ErrTerminalTooSmall = errors.New("terminal window must be at least 30 by 50 to run this game")

// CheckTerminalSize fails with ErrTerminalTooSmall below MinRows x MinCols.
func CheckTerminalSize(rows, cols int) error {
	if rows < MinRows || cols < MinCols {
		return fmt.Errorf("%w (got %d by %d)", ErrTerminalTooSmall, rows, cols)
	}
	return nil
}

// Run drives the session on a raw terminal until quit or hit.
//
// The first tick runs at once (see Start). After that each
// iteration reads input (a whole line in command mode, otherwise one
// character, blocking unless background processing is on), then asks the
// scheduler whether a tick is due and, if so, ticks and redraws.
func (s *Session) Run(term Terminal, r Renderer) error {
	rows, cols, err := term.QueryTerminalSize()
	if err != nil {
		return fmt.Errorf("fishies: query terminal size: %w", err)
	}
	if err := CheckTerminalSize(rows, cols); err != nil {
		return err
	}
	if err := term.SetBlockingMode(!s.Background()); err != nil {
		return fmt.Errorf("fishies: set blocking mode: %w", err)
	}

	s.logger.Info("session started", "rows", rows, "cols", cols, "background", s.Background())

	frame := NewFrame()
	if err := s.present(term, r, frame, s.Start()); err != nil {
		return err
	}

	var pending Input
	for !s.Done() {
		if s.Mode() == ModeCommand {
			in, err := s.readLine(term, r)
			if err != nil {
				return err
			}
			pending = in
		} else {
			ch, err := term.ReadChar()
			if err != nil {
				return fmt.Errorf("fishies: read input: %w", err)
			}
			switch {
			case ch == core.NoInput:
				if s.pollDelay > 0 {
					time.Sleep(s.pollDelay)
				}
			case s.Intercept(ch):
				return nil
			default:
				// In background mode the last key read before a tick wins.
				pending = KeyInput(ch)
			}
		}

		// In foreground mode only a received character forces a tick.
		if pending == (Input{}) && !s.Background() {
			continue
		}
		res, ticked := s.Poll(s.clock.Now(), pending)
		if !ticked {
			continue
		}
		pending = Input{}
		if err := s.present(term, r, frame, res); err != nil {
			return err
		}
	}
	return nil
}

// present applies a tick's side effects on the terminal and redraws.
func (s *Session) present(term Terminal, r Renderer, frame *core.Screen, res TickResult) error {
	if res.BackgroundChanged {
		if err := term.SetBlockingMode(!s.Background()); err != nil {
			return fmt.Errorf("fishies: set blocking mode: %w", err)
		}
	}
	s.Render(frame)
	if err := r.Draw(frame, s.Cursor()); err != nil {
		return fmt.Errorf("fishies: draw: %w", err)
	}
	return nil
}

// readLine collects one command line, echoing what is typed.
func (s *Session) readLine(term Terminal, r Renderer) (Input, error) {
	for {
		ch, err := term.ReadChar()
		if err != nil {
			return Input{}, fmt.Errorf("fishies: read command: %w", err)
		}
		if s.Intercept(ch) {
			return Input{}, nil
		}
		if core.IsPrintable(ch) || (core.IsErase(ch) && s.Line() != "") {
			if err := r.Echo(ch); err != nil {
				return Input{}, fmt.Errorf("fishies: echo: %w", err)
			}
		}
		if line, done := s.Feed(ch); done {
			return LineInput(line), nil
		}
	}
}
