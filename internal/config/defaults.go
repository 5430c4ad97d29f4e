package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			BlockTop:     2,
			BlockRows:    6,
			BlockPattern: PatternSolid,
		},
		Paddle: PaddleConfig{
			HalfWidth: 5,
			Step:      5,
			RowOffset: 2,
		},
		Ball: BallConfig{
			Lift:      3,
			Direction: "up-left",
		},
		Physics: PhysicsConfig{
			TickRate:       16,
			Reflection:     ReflectionAxis,
			MaxReflections: 8,
		},
	}
}
