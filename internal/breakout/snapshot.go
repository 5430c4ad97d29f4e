package breakout

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Status  int
	Paused  bool
	PaddleX int
	BallX   int
	BallY   int
	BallDir int

	// Live counter and a scan of the grid; they must always agree
	Blocks        int
	BlocksScanned int

	// Cell contents flattened column-major: x*(H+1) + y
	Width  int
	Height int
	Cells  []uint8
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w, h := g.field.Width(), g.field.Height()
	cells := make([]uint8, 0, (w+1)*(h+1))
	for x := 0; x <= w; x++ {
		for y := 0; y <= h; y++ {
			cells = append(cells, uint8(g.field.cells[x][y]))
		}
	}

	return Snapshot{
		Tick:          uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Status:        int(g.status),
		Paused:        g.paused,
		PaddleX:       g.paddle.X,
		BallX:         g.ball.X,
		BallY:         g.ball.Y,
		BallDir:       int(g.ball.Dir),
		Blocks:        g.field.RemainingBlocks(),
		BlocksScanned: g.field.countBlocks(),
		Width:         w,
		Height:        h,
		Cells:         cells,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Status)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDir) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Blocks)  //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.Cells {
		h = h*31 + uint64(v)
	}

	return h
}
