// Package fishies implements Flappy Fish: a fish swims through gaps in
// scrolling pipes while the game speeds up, and a red power-up resets the
// speed when collected.
//
// The simulation advances in discrete ticks. Everything here is pure game
// logic; terminals, timers and key decoding live in the platform packages.
package fishies

import (
	"fmt"
	"time"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Playfield geometry.
const (
	NumRows = 40
	NumCols = 100

	FishSpawnRow  = 20
	FishSpawnCol  = 5
	FishLowestRow = NumRows - 5 // Fish never goes below this row

	PipeTopRow = 1  // Row of the first pipe cell
	PipeHeight = 35 // Pipe cells drawn per column
	PipeWidth  = 4  // Glyph width, visual only

	GapStartMin = 10 // Inclusive
	GapStartMax = 30 // Exclusive

	PowerUpRowMin = 10 // Inclusive
	PowerUpRowMax = 30 // Exclusive
)

// Tick cadences.
const (
	PipeCadence    = 40  // A pipe spawns when ticks % 40 == 0
	ScoreOffset    = 20  // Score is awarded when ticks % 40 == 20 ...
	ScoreWarmup    = 100 // ... once ticks >= 100
	PowerUpCadence = 120 // A power-up spawns when ticks % 120 == 20
	PowerUpOffset  = 20
	PowerUpWarmup  = 138 // Power-ups move and show from this tick on
)

// Fish is the player.
type Fish struct {
	Position core.Position
	Alive    bool
	Speed    float64
}

// NewFish returns a live fish at the spawn position.
func NewFish() Fish {
	return Fish{
		Position: core.Position{Row: FishSpawnRow, Col: FishSpawnCol},
		Alive:    true,
		Speed:    1.0,
	}
}

// Direction is a vertical move request.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// Move shifts the fish one row, clamped to [0, FishLowestRow].
// The column never changes.
func (f *Fish) Move(d Direction) {
	switch d {
	case DirUp:
		f.Position.Row--
	case DirDown:
		f.Position.Row++
	default:
		return
	}
	f.Position.Row = core.Clamp(f.Position.Row, 0, FishLowestRow)
}

// Pipe is an obstacle column with a passable gap.
type Pipe struct {
	Position core.Position
	GapStart int
}

// Blocks reports whether the pipe is solid at the given playfield row.
// The gap covers rows GapStart+2 through GapStart+5.
func (p Pipe) Blocks(row int) bool {
	return row <= p.GapStart+1 || row > p.GapStart+5
}

// PipeQueue holds live pipes in spawn order, which is also left-to-right
// screen order: pipes enter at the same column and scroll at the same speed.
// Only the head can leave the screen, so removal is FIFO.
type PipeQueue struct {
	pipes []Pipe
}

// Len returns the number of live pipes.
func (q *PipeQueue) Len() int {
	return len(q.pipes)
}

// Head returns the oldest (leftmost) pipe.
func (q *PipeQueue) Head() (Pipe, bool) {
	if len(q.pipes) == 0 {
		return Pipe{}, false
	}
	return q.pipes[0], true
}

// Pipes returns the live pipes, oldest first. The slice must not be modified.
func (q *PipeQueue) Pipes() []Pipe {
	return q.pipes
}

// Push appends a freshly spawned pipe.
// Panics if it would sit left of the current tail, which would break FIFO removal.
func (q *PipeQueue) Push(p Pipe) {
	if n := len(q.pipes); n > 0 && p.Position.Col < q.pipes[n-1].Position.Col {
		panic(fmt.Sprintf("fishies: pipe spawned at col %d left of tail at col %d",
			p.Position.Col, q.pipes[n-1].Position.Col))
	}
	q.pipes = append(q.pipes, p)
}

// Advance scrolls every pipe one column left and drops the pipes that
// reached column 0 or less. Returns how many were removed.
func (q *PipeQueue) Advance() int {
	for i := range q.pipes {
		q.pipes[i].Position.Col--
	}

	removed := 0
	for len(q.pipes) > 0 && q.pipes[0].Position.Col <= 0 {
		q.pipes = q.pipes[1:]
		removed++
	}

	// Everything left must still be on screen and in column order.
	prev := 1
	for _, p := range q.pipes {
		if p.Position.Col < prev {
			panic(fmt.Sprintf("fishies: pipe queue out of scroll order at col %d", p.Position.Col))
		}
		prev = p.Position.Col
	}
	return removed
}

// PowerUp slows the game back down when the fish swims into it.
type PowerUp struct {
	Position  core.Position
	Collected bool
}

// GameState is the whole simulation state. It is owned by one Session and
// mutated only by its Tick.
type GameState struct {
	Fish         Fish
	Pipes        PipeQueue
	PowerUp      *PowerUp // nil until the first spawn
	Ticks        uint
	Score        uint
	TickInterval time.Duration
	Hit          bool
}

// NewGameState creates the state for a fresh session: the fish is waiting
// to be created, one pipe is already on its way and no power-up exists yet.
func NewGameState(rng core.Rand, ramp Ramp) *GameState {
	st := &GameState{
		Fish:         Fish{Position: core.Position{Row: FishSpawnRow, Col: FishSpawnCol}},
		TickInterval: ramp.Initial,
	}
	st.Pipes.Push(SpawnPipe(rng))
	return st
}
