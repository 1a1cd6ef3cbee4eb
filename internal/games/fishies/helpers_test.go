package fishies

import (
	"io"
	"time"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// fixedRand always draws the same value (modulo n).
type fixedRand int

func (r fixedRand) Intn(n int) int {
	return int(r) % n
}

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestSession builds a deterministic session.
func newTestSession(rng core.Rand, background bool) (*Session, *core.ManualClock) {
	clock := core.NewManualClock(testStart)
	s := NewSession(Options{
		Rand:       rng,
		Clock:      clock,
		Background: background,
	})
	return s, clock
}

// fakeTerminal replays a script of characters. A zero byte is an empty
// non-blocking read. Every read moves the clock forward by step.
type fakeTerminal struct {
	rows, cols int
	script     []byte
	clock      *core.ManualClock
	step       time.Duration
	blocking   []bool
}

func (f *fakeTerminal) ReadChar() (byte, error) {
	if len(f.script) == 0 {
		return 0, io.EOF
	}
	ch := f.script[0]
	f.script = f.script[1:]
	if f.clock != nil {
		f.clock.Advance(f.step)
	}
	return ch, nil
}

func (f *fakeTerminal) SetBlockingMode(blocking bool) error {
	f.blocking = append(f.blocking, blocking)
	return nil
}

func (f *fakeTerminal) QueryTerminalSize() (int, int, error) {
	return f.rows, f.cols, nil
}

// fakeRenderer records what would have reached the terminal.
type fakeRenderer struct {
	draws   int
	frames  []string
	cursors []core.Cursor
	echoed  []byte
}

func (f *fakeRenderer) Draw(frame *core.Screen, cursor core.Cursor) error {
	f.draws++
	f.frames = append(f.frames, frame.String())
	f.cursors = append(f.cursors, cursor)
	return nil
}

func (f *fakeRenderer) Echo(ch byte) error {
	f.echoed = append(f.echoed, ch)
	return nil
}
