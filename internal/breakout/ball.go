package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Direction is one of the four diagonal unit vectors the ball can travel.
type Direction uint8

const (
	DownLeft Direction = iota
	DownRight
	UpLeft
	UpRight
)

var directionNames = [...]string{
	DownLeft:  "down-left",
	DownRight: "down-right",
	UpLeft:    "up-left",
	UpRight:   "up-right",
}

// String returns the configuration name of the direction.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a configuration name into a Direction.
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("breakout: unknown direction %q", name)
}

// Offset returns the per-tick displacement on each axis.
// y grows downward.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DownLeft:
		return -1, 1
	case DownRight:
		return 1, 1
	case UpLeft:
		return -1, -1
	default:
		return 1, -1
	}
}

// Upward reports whether the ball is moving toward the top wall.
func (d Direction) Upward() bool {
	return d == UpLeft || d == UpRight
}

// FlipHorizontal mirrors the horizontal component (left <-> right).
func (d Direction) FlipHorizontal() Direction {
	switch d {
	case DownLeft:
		return DownRight
	case DownRight:
		return DownLeft
	case UpLeft:
		return UpRight
	default:
		return UpLeft
	}
}

// FlipVertical mirrors the vertical component (up <-> down).
func (d Direction) FlipVertical() Direction {
	switch d {
	case DownLeft:
		return UpLeft
	case DownRight:
		return UpRight
	case UpLeft:
		return DownLeft
	default:
		return DownRight
	}
}

// Ball is the single ball in play. It moves exactly one cell per tick.
type Ball struct {
	X, Y int
	Dir  Direction
}

// Next returns the coordinate the ball would occupy after one step.
func (b Ball) Next() (x, y int) {
	dx, dy := b.Dir.Offset()
	return b.X + dx, b.Y + dy
}

// Paddle is the player's paddle: an anchor on a fixed row whose collision
// footprint spans anchor ± HalfWidth.
type Paddle struct {
	X, Y      int
	HalfWidth int
}

// Left returns the leftmost footprint column.
func (p Paddle) Left() int {
	return p.X - p.HalfWidth
}

// Right returns the rightmost footprint column.
func (p Paddle) Right() int {
	return p.X + p.HalfWidth
}

// Covers reports whether (x, y) lies within the paddle footprint.
func (p Paddle) Covers(x, y int) bool {
	return y == p.Y && x >= p.Left() && x <= p.Right()
}

// Shift moves the anchor by dx, clamped so the footprint stays strictly
// between the side walls of f.
func (p *Paddle) Shift(dx int, f *Field) {
	minX := 1 + p.HalfWidth
	maxX := f.Width() - 1 - p.HalfWidth
	if maxX < minX {
		// Footprint wider than the interior: pin to the center
		p.X = f.Width() / 2
		return
	}
	p.X = core.Clamp(p.X+dx, minX, maxX)
}
