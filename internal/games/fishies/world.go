package fishies

import (
	"github.com/vovakirdan/flappy-fish/internal/core"
)

// SpawnPipe creates a pipe at the right edge with a random gap.
func SpawnPipe(rng core.Rand) Pipe {
	return Pipe{
		Position: core.Position{Row: PipeTopRow, Col: NumCols},
		GapStart: GapStartMin + rng.Intn(GapStartMax-GapStartMin),
	}
}

// SpawnPowerUp creates an uncollected power-up at the right edge on a random row.
func SpawnPowerUp(rng core.Rand) *PowerUp {
	return &PowerUp{
		Position: core.Position{
			Row: PowerUpRowMin + rng.Intn(PowerUpRowMax-PowerUpRowMin),
			Col: NumCols,
		},
	}
}

// PipeDue reports whether a pipe spawns (and the game speeds up) on this tick.
func PipeDue(ticks uint) bool {
	return ticks%PipeCadence == 0
}

// ScoreDue reports whether this tick awards a point.
//
// Scoring follows the spawn cadence, not pipe geometry: a point is given
// halfway between spawns once the warm-up is over, whether or not a pipe
// is actually beside the fish at that moment.
func ScoreDue(ticks uint) bool {
	return ticks%PipeCadence == ScoreOffset && ticks >= ScoreWarmup
}

// PowerUpDue reports whether a new power-up replaces the current one.
func PowerUpDue(ticks uint) bool {
	return ticks%PowerUpCadence == PowerUpOffset
}

// PowerUpActive reports whether power-ups scroll and are drawn on this tick.
func PowerUpActive(ticks uint) bool {
	return ticks >= PowerUpWarmup
}

// advanceWorld runs the scheduled part of a tick: scoring, spawning,
// the difficulty ramp and scrolling, in that order.
func advanceWorld(st *GameState, rng core.Rand, ramp Ramp) {
	if ScoreDue(st.Ticks) {
		st.Score++
	}

	if PipeDue(st.Ticks) {
		st.Pipes.Push(SpawnPipe(rng))
		st.TickInterval = ramp.Next(st.TickInterval)
	}

	if PowerUpDue(st.Ticks) {
		st.PowerUp = SpawnPowerUp(rng)
	}

	st.Pipes.Advance()

	if p := st.PowerUp; p != nil && !p.Collected && PowerUpActive(st.Ticks) {
		p.Position.Col--
	}
}
