// Package config provides YAML-based game configuration loading and
// validation for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// Reflection modes for wall collisions.
const (
	ReflectionAxis    = "axis"    // Side walls flip horizontal, top wall flips vertical
	ReflectionClassic = "classic" // Every wall flips horizontal only
)

// Block patterns for the block region.
const (
	PatternSolid     = "solid"     // Every cell in the region
	PatternReachable = "reachable" // Only cells the ball can ever hit
)

// Ball direction names accepted in configuration.
var DirectionNames = []string{"up-left", "up-right", "down-left", "down-right"}

// BreakoutConfig contains all configuration for the breakout game.
type BreakoutConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Physics PhysicsConfig `yaml:"physics"`
}

// FieldConfig defines the field geometry and the block region.
type FieldConfig struct {
	Width        int    `yaml:"width"`         // W extent; 0 = fit terminal
	Height       int    `yaml:"height"`        // H extent; 0 = fit terminal
	BlockTop     int    `yaml:"block_top"`     // First block row
	BlockRows    int    `yaml:"block_rows"`    // Number of block rows
	BlockMargin  int    `yaml:"block_margin"`  // Empty columns between side walls and blocks
	BlockPattern string `yaml:"block_pattern"` // PatternSolid or PatternReachable
}

// PaddleConfig defines the paddle footprint and movement.
type PaddleConfig struct {
	HalfWidth int `yaml:"half_width"` // Footprint is anchor ± half_width
	Step      int `yaml:"step"`       // Cells moved per left/right command
	RowOffset int `yaml:"row_offset"` // Paddle row = H - row_offset
}

// BallConfig defines the ball's starting state.
type BallConfig struct {
	Lift      int    `yaml:"lift"`      // Rows above the paddle anchor
	Direction string `yaml:"direction"` // One of DirectionNames
}

// PhysicsConfig defines simulation pacing and collision rules.
type PhysicsConfig struct {
	TickRate       int    `yaml:"tick_rate"`       // Ticks per second
	Reflection     string `yaml:"reflection"`      // ReflectionAxis or ReflectionClassic
	MaxReflections int    `yaml:"max_reflections"` // Reflection events allowed per tick
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Field.Width >= 0, "field.width must not be negative, got %d", c.Field.Width)
	check(c.Field.Height >= 0, "field.height must not be negative, got %d", c.Field.Height)
	check(c.Field.BlockTop >= 1, "field.block_top must be at least 1, got %d", c.Field.BlockTop)
	check(c.Field.BlockRows >= 1, "field.block_rows must be at least 1, got %d", c.Field.BlockRows)
	check(c.Field.BlockMargin >= 0, "field.block_margin must not be negative, got %d", c.Field.BlockMargin)
	check(c.Field.BlockPattern == PatternSolid || c.Field.BlockPattern == PatternReachable,
		"field.block_pattern must be %q or %q, got %q", PatternSolid, PatternReachable, c.Field.BlockPattern)

	check(c.Paddle.HalfWidth >= 0, "paddle.half_width must not be negative, got %d", c.Paddle.HalfWidth)
	check(c.Paddle.Step >= 1, "paddle.step must be at least 1, got %d", c.Paddle.Step)
	check(c.Paddle.RowOffset >= 1, "paddle.row_offset must be at least 1, got %d", c.Paddle.RowOffset)

	check(c.Ball.Lift >= 1, "ball.lift must be at least 1, got %d", c.Ball.Lift)
	check(isDirection(c.Ball.Direction), "ball.direction %q is not one of %v", c.Ball.Direction, DirectionNames)

	check(c.Physics.TickRate >= 1 && c.Physics.TickRate <= 240,
		"physics.tick_rate must be in [1, 240], got %d", c.Physics.TickRate)
	check(c.Physics.Reflection == ReflectionAxis || c.Physics.Reflection == ReflectionClassic,
		"physics.reflection must be %q or %q, got %q", ReflectionAxis, ReflectionClassic, c.Physics.Reflection)
	check(c.Physics.MaxReflections >= 1, "physics.max_reflections must be at least 1, got %d", c.Physics.MaxReflections)

	return errors.Join(errs...)
}

func isDirection(name string) bool {
	for _, d := range DirectionNames {
		if d == name {
			return true
		}
	}
	return false
}
