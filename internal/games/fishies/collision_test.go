package fishies

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

func TestPipeCollides(t *testing.T) {
	tests := []struct {
		name     string
		col      int
		gap      int
		row      int
		expected bool
	}{
		{"right of band", 13, 15, 0, false},
		{"left of band", 4, 15, 0, false},
		{"band edge low, above gap", 5, 15, 16, true},
		{"band edge high, above gap", 12, 15, 16, true},
		{"first open row", 8, 15, 17, false},
		{"last open row", 8, 15, 20, false},
		{"below gap", 8, 15, 21, true},
		{"top of screen", 8, 10, 0, true},
		{"deep gap", 8, 29, 33, false},
		{"under deep gap", 8, 29, NumRows - 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PipeCollides(tt.col, tt.gap, tt.row)
			if got != tt.expected {
				t.Errorf("PipeCollides(%d, %d, %d) = %v, expected %v", tt.col, tt.gap, tt.row, got, tt.expected)
			}
		})
	}
}

func TestPipeCollidesIsPure(t *testing.T) {
	for col := 0; col <= 15; col++ {
		for row := 0; row <= NumRows-5; row++ {
			first := PipeCollides(col, 17, row)
			for i := 0; i < 3; i++ {
				if PipeCollides(col, 17, row) != first {
					t.Fatalf("PipeCollides(%d, 17, %d) changed between calls", col, row)
				}
			}
		}
	}
}

func TestPowerUpCollides(t *testing.T) {
	if !PowerUpCollides(5, 14, 14) {
		t.Error("expected collision at band edge on same row")
	}
	if PowerUpCollides(5, 14, 15) {
		t.Error("expected no collision on a different row")
	}
	if PowerUpCollides(13, 14, 14) {
		t.Error("expected no collision outside band")
	}
}

func TestResolveCollisionsRescue(t *testing.T) {
	ramp := DefaultRamp()
	st := &GameState{
		Fish:         NewFish(),
		PowerUp:      &PowerUp{Position: core.Position{Row: FishSpawnRow, Col: 8}},
		TickInterval: 60 * time.Millisecond,
	}

	if !resolveCollisions(st, ramp) {
		t.Fatal("power-up not collected")
	}
	if !st.PowerUp.Collected {
		t.Error("power-up not marked collected")
	}
	if st.TickInterval != ramp.Initial {
		t.Errorf("interval = %v, expected %v", st.TickInterval, ramp.Initial)
	}

	st.TickInterval = 50 * time.Millisecond
	if resolveCollisions(st, ramp) {
		t.Error("collected power-up rescued twice")
	}
	if st.TickInterval != 50*time.Millisecond {
		t.Errorf("interval = %v, expected 50ms", st.TickInterval)
	}
}

func TestResolveCollisionsHeadOnly(t *testing.T) {
	st := &GameState{Fish: NewFish()}
	// Head is past the band; the second pipe would block row 20 if it were checked.
	st.Pipes.Push(Pipe{Position: core.Position{Col: 3}, GapStart: 16})
	st.Pipes.Push(Pipe{Position: core.Position{Col: 8}, GapStart: 29})

	resolveCollisions(st, DefaultRamp())
	if st.Hit {
		t.Error("hit registered against a pipe behind the head")
	}
}

func TestSessionHitsPipe(t *testing.T) {
	// Gap 10 leaves rows 12..15 open; the fish stays at row 20.
	s, _ := newTestSession(fixedRand(0), false)
	s.Tick(s.BootstrapInput())

	for !s.Done() && s.Ticks() < 200 {
		s.Tick(Input{})
	}
	if !s.Hit() {
		t.Fatal("fish never hit the pipe")
	}
	// The initial pipe reaches col 12 on tick 88.
	if s.Ticks() != 88 {
		t.Errorf("hit on tick %d, expected 88", s.Ticks())
	}

	ticks := s.Ticks()
	res := s.Tick(Input{})
	if s.Ticks() != ticks || !res.Hit {
		t.Error("session kept ticking after a hit")
	}
}

func TestSessionPassesThroughGap(t *testing.T) {
	// Gap 16 leaves rows 18..21 open around the spawn row.
	s, _ := newTestSession(fixedRand(6), false)
	s.Tick(s.BootstrapInput())

	for s.Ticks() < 100 {
		s.Tick(Input{})
	}
	if s.Hit() {
		t.Errorf("hit on tick %d, expected to pass", s.Ticks())
	}
}
