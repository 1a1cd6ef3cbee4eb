package fishies

// Danger band: the columns in which the fish can touch a pipe or power-up.
const (
	DangerColMin = 5
	DangerColMax = 12
)

// InDangerBand reports whether col lies in the collidable column range.
func InDangerBand(col int) bool {
	return col >= DangerColMin && col <= DangerColMax
}

// PipeCollides reports whether a fish on fishRow hits a pipe at pipeCol
// whose gap starts at gapStart.
func PipeCollides(pipeCol, gapStart, fishRow int) bool {
	if !InDangerBand(pipeCol) {
		return false
	}
	return Pipe{GapStart: gapStart}.Blocks(fishRow)
}

// PowerUpCollides reports whether a fish on fishRow picks up a power-up
// at (row, col).
func PowerUpCollides(col, row, fishRow int) bool {
	return InDangerBand(col) && fishRow == row
}

// resolveCollisions applies collision effects for this tick.
// Only the head pipe is checked: pipes behind it are at least a spawn
// cadence further right and cannot reach the band before the head leaves.
// Returns whether a power-up was collected.
func resolveCollisions(st *GameState, ramp Ramp) (rescued bool) {
	if !st.Fish.Alive {
		return false
	}
	row := st.Fish.Position.Row

	if p := st.PowerUp; p != nil && !p.Collected && PowerUpCollides(p.Position.Col, p.Position.Row, row) {
		p.Collected = true
		st.TickInterval = ramp.Reset()
		rescued = true
	}

	if head, ok := st.Pipes.Head(); ok && PipeCollides(head.Position.Col, head.GapStart, row) {
		st.Hit = true
	}
	return rescued
}
