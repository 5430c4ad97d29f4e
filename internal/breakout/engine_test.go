package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// noPaddle sits off the field so it never takes part in a collision.
var noPaddle = Paddle{X: 15, Y: -1, HalfWidth: 5}

// sentinelField is a 30x30 field with a single far-away block, so ticks that
// hit nothing report Playing instead of Won.
func sentinelField() *Field {
	return NewField(30, 30, WithBlockRegion(core.NewRect(25, 25, 1, 1)))
}

func engineWith(mode ReflectionMode) Engine {
	e := NewEngine()
	e.Reflection = mode
	return e
}

func TestAdvanceTenByTenLastBlock(t *testing.T) {
	f := NewField(10, 10, WithBlockRegion(core.NewRect(4, 2, 1, 1)))
	require.Equal(t, 1, f.RemainingBlocks())

	b := Ball{X: 5, Y: 3, Dir: UpLeft}
	status, err := NewEngine().Advance(f, noPaddle, &b)
	require.NoError(t, err)

	assert.Equal(t, StatusWon, status)
	assert.Equal(t, 0, f.RemainingBlocks())
	assert.Equal(t, CellEmpty, mustCell(t, f, 4, 2))
	assert.Equal(t, DownLeft, b.Dir)
	assert.Equal(t, Ball{X: 4, Y: 4, Dir: DownLeft}, b)
}

func TestAdvanceMovesIntoEmptyCell(t *testing.T) {
	f := sentinelField()
	b := Ball{X: 10, Y: 10, Dir: DownRight}

	status, err := NewEngine().Advance(f, noPaddle, &b)
	require.NoError(t, err)
	assert.Equal(t, StatusPlaying, status)
	assert.Equal(t, Ball{X: 11, Y: 11, Dir: DownRight}, b)
}

func TestAdvanceWallContainment(t *testing.T) {
	for _, mode := range []ReflectionMode{ReflectAxis, ReflectClassic} {
		e := engineWith(mode)

		for y := 3; y <= 20; y++ {
			for _, dir := range []Direction{UpLeft, DownLeft} {
				f := sentinelField()
				b := Ball{X: 1, Y: y, Dir: dir}
				status, err := e.Advance(f, noPaddle, &b)
				require.NoError(t, err)
				assert.Equal(t, StatusPlaying, status)
				assert.NotEqual(t, 0, b.X, "ball entered left wall from y=%d", y)
				assert.Equal(t, 2, b.X)
				assert.Equal(t, dir.FlipHorizontal(), b.Dir)
			}

			for _, dir := range []Direction{UpRight, DownRight} {
				f := sentinelField()
				b := Ball{X: 29, Y: y, Dir: dir}
				status, err := e.Advance(f, noPaddle, &b)
				require.NoError(t, err)
				assert.Equal(t, StatusPlaying, status)
				assert.NotEqual(t, 30, b.X, "ball entered right wall from y=%d", y)
				assert.Equal(t, 28, b.X)
				assert.Equal(t, dir.FlipHorizontal(), b.Dir)
			}
		}
	}
}

func TestAdvanceTopWallAxis(t *testing.T) {
	e := engineWith(ReflectAxis)

	for x := 3; x <= 20; x++ {
		f := sentinelField()
		b := Ball{X: x, Y: 1, Dir: UpLeft}
		status, err := e.Advance(f, noPaddle, &b)
		require.NoError(t, err)
		assert.Equal(t, StatusPlaying, status)
		assert.Equal(t, Ball{X: x - 1, Y: 2, Dir: DownLeft}, b)

		f = sentinelField()
		b = Ball{X: x, Y: 1, Dir: UpRight}
		_, err = e.Advance(f, noPaddle, &b)
		require.NoError(t, err)
		assert.Equal(t, Ball{X: x + 1, Y: 2, Dir: DownRight}, b)
	}
}

// The classic rule only flips horizontally, so a ball at the top wall keeps
// bouncing against it and the tick is cut off.
func TestAdvanceTopWallClassicHitsLimit(t *testing.T) {
	e := engineWith(ReflectClassic)
	f := sentinelField()
	b := Ball{X: 10, Y: 1, Dir: UpLeft}

	_, err := e.Advance(f, noPaddle, &b)
	require.ErrorIs(t, err, ErrReflectionLimit)
	assert.Equal(t, 10, b.X)
	assert.Equal(t, 1, b.Y)
}

func TestAdvanceTopCorner(t *testing.T) {
	f := sentinelField()
	b := Ball{X: 1, Y: 1, Dir: UpLeft}
	_, err := engineWith(ReflectAxis).Advance(f, noPaddle, &b)
	require.NoError(t, err)
	assert.Equal(t, Ball{X: 2, Y: 2, Dir: DownRight}, b)

	f = sentinelField()
	b = Ball{X: 1, Y: 1, Dir: UpLeft}
	_, err = engineWith(ReflectClassic).Advance(f, noPaddle, &b)
	assert.ErrorIs(t, err, ErrReflectionLimit)
}

func TestAdvanceLoss(t *testing.T) {
	for _, mode := range []ReflectionMode{ReflectAxis, ReflectClassic} {
		e := engineWith(mode)

		for x := 2; x <= 28; x++ {
			for _, dir := range []Direction{DownLeft, DownRight} {
				f := sentinelField()
				b := Ball{X: x, Y: 29, Dir: dir}
				status, err := e.Advance(f, noPaddle, &b)
				require.NoError(t, err)
				assert.Equal(t, StatusLost, status)
				assert.Equal(t, x, b.X)
				assert.Equal(t, 29, b.Y)
			}
		}

		// Bottom corners deflect into the dead-zone rather than out of it
		f := sentinelField()
		b := Ball{X: 1, Y: 29, Dir: DownLeft}
		status, err := e.Advance(f, noPaddle, &b)
		require.NoError(t, err)
		assert.Equal(t, StatusLost, status)
		assert.Equal(t, 1, b.X)
		assert.Equal(t, 29, b.Y)
	}
}

func TestAdvancePaddleReflection(t *testing.T) {
	p := Paddle{X: 15, Y: 28, HalfWidth: 5}
	e := NewEngine()

	// Every candidate column 10..20 is inside the 11-cell footprint
	for cx := 10; cx <= 20; cx++ {
		f := sentinelField()
		b := Ball{X: cx - 1, Y: 27, Dir: DownRight}
		status, err := e.Advance(f, p, &b)
		require.NoError(t, err)
		assert.Equal(t, StatusPlaying, status)
		assert.Equal(t, Ball{X: cx - 1, Y: 27, Dir: UpRight}, b, "candidate x=%d", cx)

		f = sentinelField()
		b = Ball{X: cx + 1, Y: 27, Dir: DownLeft}
		_, err = e.Advance(f, p, &b)
		require.NoError(t, err)
		assert.Equal(t, Ball{X: cx + 1, Y: 27, Dir: UpLeft}, b, "candidate x=%d", cx)
	}

	// Just outside the footprint the ball passes the paddle row
	f := sentinelField()
	b := Ball{X: 20, Y: 27, Dir: DownRight}
	_, err := e.Advance(f, p, &b)
	require.NoError(t, err)
	assert.Equal(t, Ball{X: 21, Y: 28, Dir: DownRight}, b)

	f = sentinelField()
	b = Ball{X: 10, Y: 27, Dir: DownLeft}
	_, err = e.Advance(f, p, &b)
	require.NoError(t, err)
	assert.Equal(t, Ball{X: 9, Y: 28, Dir: DownLeft}, b)
}

func TestAdvancePaddleHalfWidth(t *testing.T) {
	p := Paddle{X: 15, Y: 28, HalfWidth: 0}
	f := sentinelField()

	b := Ball{X: 14, Y: 27, Dir: DownRight}
	_, err := NewEngine().Advance(f, p, &b)
	require.NoError(t, err)
	assert.Equal(t, UpRight, b.Dir)

	b = Ball{X: 15, Y: 27, Dir: DownRight}
	_, err = NewEngine().Advance(f, p, &b)
	require.NoError(t, err)
	assert.Equal(t, Ball{X: 16, Y: 28, Dir: DownRight}, b)
}

func TestAdvanceUpwardBallOnPaddleRow(t *testing.T) {
	p := Paddle{X: 15, Y: 28, HalfWidth: 5}
	f := sentinelField()
	b := Ball{X: 15, Y: 29, Dir: UpLeft}

	_, err := NewEngine().Advance(f, p, &b)
	require.ErrorIs(t, err, ErrUnreachableCollisionState)
	assert.Equal(t, Ball{X: 15, Y: 29, Dir: UpLeft}, b)
}

func TestAdvanceBlockHit(t *testing.T) {
	f := NewField(30, 30, WithBlockRegion(core.NewRect(11, 9, 2, 1)))
	b := Ball{X: 10, Y: 10, Dir: UpRight}

	status, err := NewEngine().Advance(f, noPaddle, &b)
	require.NoError(t, err)
	assert.Equal(t, StatusPlaying, status)
	assert.Equal(t, 1, f.RemainingBlocks())
	assert.Equal(t, CellEmpty, mustCell(t, f, 11, 9))
	assert.Equal(t, CellBlock, mustCell(t, f, 12, 9))
	assert.Equal(t, Ball{X: 11, Y: 11, Dir: DownRight}, b)
}

func TestAdvanceChainedReflections(t *testing.T) {
	// Wall, then block, then a move, all within one tick
	f := NewField(30, 30, WithBlockRegion(core.NewRect(2, 2, 1, 1)))
	b := Ball{X: 1, Y: 3, Dir: UpLeft}

	status, err := NewEngine().Advance(f, noPaddle, &b)
	require.NoError(t, err)
	assert.Equal(t, StatusWon, status)
	assert.Equal(t, 0, f.RemainingBlocks())
	assert.Equal(t, Ball{X: 2, Y: 4, Dir: DownRight}, b)
}

func TestAdvanceReflectionLimitStopsBeforeNextEvent(t *testing.T) {
	// Wall, then a block that would be the second reflection
	f := NewField(30, 30, WithBlockRegion(core.NewRect(2, 2, 1, 1)))
	b := Ball{X: 1, Y: 3, Dir: UpLeft}

	e := NewEngine()
	e.MaxReflections = 1

	_, err := e.Advance(f, noPaddle, &b)
	require.ErrorIs(t, err, ErrReflectionLimit)
	assert.Equal(t, 1, f.RemainingBlocks())
	assert.Equal(t, 1, b.X)
	assert.Equal(t, 3, b.Y)
}

func TestAdvanceReflectionLimitKeepsEarlierClears(t *testing.T) {
	// Blocks at (4,4) and (4,6) are hit back to back; (4,5) is never touched
	f := NewField(30, 30, WithBlockRegion(core.NewRect(4, 4, 1, 3)))
	b := Ball{X: 5, Y: 5, Dir: UpLeft}

	e := NewEngine()
	e.MaxReflections = 1

	_, err := e.Advance(f, noPaddle, &b)
	require.ErrorIs(t, err, ErrReflectionLimit)
	assert.Equal(t, 2, f.RemainingBlocks())
	assert.Equal(t, CellEmpty, mustCell(t, f, 4, 4))
	assert.Equal(t, CellBlock, mustCell(t, f, 4, 6))
	assert.Equal(t, Ball{X: 5, Y: 5, Dir: DownLeft}, b)
}

func TestAdvanceReflectionLimitAllowsExactCount(t *testing.T) {
	e := NewEngine()
	e.MaxReflections = 1

	t.Run("wall then move", func(t *testing.T) {
		f := sentinelField()
		b := Ball{X: 1, Y: 10, Dir: UpLeft}
		status, err := e.Advance(f, noPaddle, &b)
		require.NoError(t, err)
		assert.Equal(t, StatusPlaying, status)
		assert.Equal(t, Ball{X: 2, Y: 9, Dir: UpRight}, b)
	})

	t.Run("last block then move", func(t *testing.T) {
		f := NewField(30, 30, WithBlockRegion(core.NewRect(9, 9, 1, 1)))
		b := Ball{X: 10, Y: 10, Dir: UpLeft}
		status, err := e.Advance(f, noPaddle, &b)
		require.NoError(t, err)
		assert.Equal(t, StatusWon, status)
		assert.Equal(t, 0, f.RemainingBlocks())
		assert.Equal(t, Ball{X: 9, Y: 11, Dir: DownLeft}, b)
	})

	t.Run("wall and block at a cap of two", func(t *testing.T) {
		f := NewField(30, 30, WithBlockRegion(core.NewRect(2, 2, 1, 1)))
		b := Ball{X: 1, Y: 3, Dir: UpLeft}
		e2 := NewEngine()
		e2.MaxReflections = 2
		status, err := e2.Advance(f, noPaddle, &b)
		require.NoError(t, err)
		assert.Equal(t, StatusWon, status)
		assert.Equal(t, Ball{X: 2, Y: 4, Dir: DownRight}, b)
	})
}

func TestAdvanceWinAfterNClears(t *testing.T) {
	f := NewField(30, 30, WithBlockRegion(core.NewRect(4, 5, 5, 1)))
	const n = 5
	require.Equal(t, n, f.RemainingBlocks())

	e := NewEngine()
	for i := 0; i < n; i++ {
		bx := 4 + i
		b := Ball{X: bx + 1, Y: 6, Dir: UpLeft}
		status, err := e.Advance(f, noPaddle, &b)
		require.NoError(t, err)

		assert.Equal(t, n-i-1, f.RemainingBlocks())
		if i < n-1 {
			assert.Equal(t, StatusPlaying, status, "clear %d", i+1)
		} else {
			assert.Equal(t, StatusWon, status)
		}
	}
	assert.Equal(t, 0, f.RemainingBlocks())
}

// A paddle that always sits under the ball never misses, so a long run
// exercises walls, blocks and the paddle together.
func TestAdvanceBlockMonotonicity(t *testing.T) {
	start := Ball{X: 20, Y: 15, Dir: UpLeft}
	f := NewField(40, 20, WithBlockParity(start.X+start.Y))
	p := Paddle{X: 20, Y: 18, HalfWidth: 5}
	b := start

	e := NewEngine()
	e.MaxReflections = 16

	prev := f.RemainingBlocks()
	require.Positive(t, prev)

	for tick := 0; tick < 20000; tick++ {
		p.X = b.X
		p.Shift(0, f)

		status, err := e.Advance(f, p, &b)
		require.NoError(t, err, "tick %d", tick)
		require.NotEqual(t, StatusLost, status, "tick %d", tick)

		remaining := f.RemainingBlocks()
		require.LessOrEqual(t, remaining, prev, "tick %d", tick)
		require.GreaterOrEqual(t, remaining, 0)
		require.Equal(t, f.countBlocks(), remaining, "tick %d", tick)
		prev = remaining

		if status == StatusWon {
			require.Equal(t, 0, remaining)
			break
		}
	}
}

func TestDirectionFlips(t *testing.T) {
	tests := []struct {
		dir        Direction
		horizontal Direction
		vertical   Direction
	}{
		{DownLeft, DownRight, UpLeft},
		{DownRight, DownLeft, UpRight},
		{UpLeft, UpRight, DownLeft},
		{UpRight, UpLeft, DownRight},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			assert.Equal(t, tc.horizontal, tc.dir.FlipHorizontal())
			assert.Equal(t, tc.vertical, tc.dir.FlipVertical())
			assert.Equal(t, tc.dir, tc.dir.FlipHorizontal().FlipHorizontal())

			parsed, err := ParseDirection(tc.dir.String())
			require.NoError(t, err)
			assert.Equal(t, tc.dir, parsed)
		})
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestPaddleShiftClamps(t *testing.T) {
	f := NewField(40, 20)
	p := Paddle{X: 20, Y: 18, HalfWidth: 5}

	p.Shift(-100, f)
	assert.Equal(t, 6, p.X)
	assert.Equal(t, 1, p.Left())

	p.Shift(5, f)
	assert.Equal(t, 11, p.X)

	p.Shift(100, f)
	assert.Equal(t, 34, p.X)
	assert.Equal(t, 39, p.Right())

	// Footprint wider than the interior pins to the center
	wide := Paddle{X: 3, Y: 8, HalfWidth: 20}
	wide.Shift(1, NewField(10, 10))
	assert.Equal(t, 5, wide.X)
}

func TestParseReflectionMode(t *testing.T) {
	m, err := ParseReflectionMode("axis")
	require.NoError(t, err)
	assert.Equal(t, ReflectAxis, m)

	m, err = ParseReflectionMode("classic")
	require.NoError(t, err)
	assert.Equal(t, ReflectClassic, m)

	_, err = ParseReflectionMode("mirror")
	assert.Error(t, err)
}
