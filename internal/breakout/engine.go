package breakout

import (
	"fmt"
)

// Status is the outcome of one tick.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusLost
	StatusWon
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// ReflectionMode selects how wall hits change the ball direction.
type ReflectionMode uint8

const (
	// ReflectAxis flips the horizontal component on side walls and the
	// vertical component on the top wall; corners flip both.
	ReflectAxis ReflectionMode = iota

	// ReflectClassic flips only the horizontal component on every wall.
	// A ball reaching the top wall bounces between left and right without
	// ever leaving it, so such a tick ends in ErrReflectionLimit.
	ReflectClassic
)

// ParseReflectionMode converts a configuration name into a ReflectionMode.
func ParseReflectionMode(name string) (ReflectionMode, error) {
	switch name {
	case "axis":
		return ReflectAxis, nil
	case "classic":
		return ReflectClassic, nil
	default:
		return 0, fmt.Errorf("breakout: unknown reflection mode %q", name)
	}
}

// DefaultMaxReflections bounds the reflection events resolved in one tick.
const DefaultMaxReflections = 8

// Engine advances the ball. It holds only collision rules, no game state,
// so one Engine may serve any number of fields sequentially.
type Engine struct {
	Reflection     ReflectionMode
	MaxReflections int
}

// NewEngine returns an engine with axis reflection and the default cap.
func NewEngine() Engine {
	return Engine{
		Reflection:     ReflectAxis,
		MaxReflections: DefaultMaxReflections,
	}
}

// Advance runs one tick: it resolves every wall, block and paddle collision
// against the ball's next cell and then either moves the ball one cell or
// leaves it in place. Wall and block hits re-aim the ball without moving it
// and are followed by another attempt in the same tick.
//
// Precedence is wall > block > dead-zone > paddle/empty.
func (e Engine) Advance(f *Field, p Paddle, b *Ball) (Status, error) {
	limit := e.MaxReflections
	if limit <= 0 {
		limit = DefaultMaxReflections
	}

	for reflections := 0; ; {
		nx, ny := b.Next()
		cell, err := f.CellAt(nx, ny)
		if err != nil {
			return StatusPlaying, err
		}

		// Up to limit reflections are resolved; the next one aborts the tick
		// before it changes anything. Blocks cleared earlier in the tick stay
		// cleared.
		if cell == CellWall || cell == CellBlock {
			if reflections == limit {
				return StatusPlaying, fmt.Errorf("ball at (%d, %d) after %d reflections: %w",
					b.X, b.Y, reflections, ErrReflectionLimit)
			}
			reflections++
		}

		switch cell {
		case CellWall:
			b.Dir = e.reflectWall(f, b.Dir, nx, ny)

		case CellBlock:
			b.Dir = b.Dir.FlipVertical()
			if err := f.ClearBlockAt(nx, ny); err != nil {
				return StatusPlaying, err
			}

		case CellDeadZone:
			return StatusLost, nil

		default:
			if p.Covers(nx, ny) {
				if b.Dir.Upward() {
					return StatusPlaying, fmt.Errorf("ball at (%d, %d) moving %s onto paddle row %d: %w",
						b.X, b.Y, b.Dir, p.Y, ErrUnreachableCollisionState)
				}
				b.Dir = b.Dir.FlipVertical()
			} else {
				b.X, b.Y = nx, ny
			}
			return e.status(f), nil
		}
	}
}

// reflectWall returns the direction after hitting the wall at (wx, wy).
func (e Engine) reflectWall(f *Field, d Direction, wx, wy int) Direction {
	if e.Reflection == ReflectClassic {
		return d.FlipHorizontal()
	}

	// The bottom corners count as side walls so the ball still falls into
	// the dead-zone next to them.
	side := wx <= 0 || wx >= f.Width()
	top := wy <= 0
	switch {
	case side && top:
		return d.FlipHorizontal().FlipVertical()
	case top:
		return d.FlipVertical()
	case side:
		return d.FlipHorizontal()
	default:
		// Interior wall: no orientation to go by, send the ball back
		return d.FlipHorizontal().FlipVertical()
	}
}

func (e Engine) status(f *Field) Status {
	if f.RemainingBlocks() == 0 {
		return StatusWon
	}
	return StatusPlaying
}
