package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to fit the field to the terminal.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The tick rate matches the ~60ms frame delay the game was tuned for.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 16,
	}
}
