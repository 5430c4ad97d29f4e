package breakout

import "errors"

// Contract violations reported by the field and the engine. They indicate a
// bug in the caller or an impossible physical state, never a normal outcome;
// GameStatus is the only expected control-flow signal.
var (
	// ErrOutOfBounds is returned when a coordinate falls outside [0,W]×[0,H].
	ErrOutOfBounds = errors.New("breakout: coordinate out of bounds")

	// ErrInvalidClear is returned when ClearBlockAt targets a non-block cell.
	ErrInvalidClear = errors.New("breakout: clear of non-block cell")

	// ErrUnreachableCollisionState is returned when an upward-moving ball is
	// checked against the paddle row.
	ErrUnreachableCollisionState = errors.New("breakout: unreachable collision state")

	// ErrReflectionLimit is returned when a single tick chains more
	// reflections than the engine allows.
	ErrReflectionLimit = errors.New("breakout: reflection limit exceeded")
)
