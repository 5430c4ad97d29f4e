package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// State is the game status reported to the platform after each tick.
type State struct {
	Status Status // Outcome of the last tick
	Blocks int    // Blocks remaining
	Tick   int    // Ticks simulated since reset
	Paused bool   // Whether the game is paused
	Fault  error  // Contract violation that stopped the simulation
}

// Over reports whether the game has ended and ticking should stop.
func (s State) Over() bool {
	return s.Status != StatusPlaying || s.Fault != nil
}

// Game drives the simulation: it owns the field, paddle and ball, applies
// player input and calls the engine once per tick.
type Game struct {
	cfg      config.BreakoutConfig
	runtime  core.RuntimeConfig
	engine   Engine
	startDir Direction

	field  *Field
	paddle Paddle
	ball   Ball

	status      Status
	paused      bool
	fault       error
	tickCount   int
	blocksTotal int

	// Layout (computed from screen size)
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game from a validated configuration.
func New(cfg config.BreakoutConfig) (*Game, error) {
	dir, err := ParseDirection(cfg.Ball.Direction)
	if err != nil {
		return nil, err
	}
	mode, err := ParseReflectionMode(cfg.Physics.Reflection)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		startDir: dir,
		engine: Engine{
			Reflection:     mode,
			MaxReflections: cfg.Physics.MaxReflections,
		},
	}, nil
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game for the given screen.
// The field fills the screen below the one-row HUD unless the configuration
// fixes its size.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	width, height := g.fieldSize()
	g.minScreenW, g.minScreenH = g.minScreen()
	g.screenTooSmall = width+1 > runtime.ScreenW || height+2 > runtime.ScreenH ||
		width+1 < g.minScreenW || height+2 < g.minScreenH

	g.status = StatusPlaying
	g.paused = false
	g.fault = nil
	g.tickCount = 0

	margin := g.cfg.Field.BlockMargin
	region := core.NewRect(1+margin, g.cfg.Field.BlockTop, width-1-2*margin, g.cfg.Field.BlockRows)
	opts := []FieldOption{WithBlockRegion(region)}

	// The paddle clamp needs the field extents, so place it on a bare field first
	g.field = NewField(width, height, WithBlockRegion(core.Rect{}))
	g.paddle = Paddle{
		X:         width / 2,
		Y:         height - g.cfg.Paddle.RowOffset,
		HalfWidth: g.cfg.Paddle.HalfWidth,
	}
	g.paddle.Shift(0, g.field)

	g.ball = Ball{
		X:   g.paddle.X,
		Y:   g.paddle.Y - g.cfg.Ball.Lift,
		Dir: g.startDir,
	}

	if g.cfg.Field.BlockPattern == config.PatternReachable {
		opts = append(opts, WithBlockParity(g.ball.X+g.ball.Y))
	}
	g.field = NewField(width, height, opts...)
	g.blocksTotal = g.field.RemainingBlocks()
}

// fieldSize returns the W and H extents for the current screen.
func (g *Game) fieldSize() (int, int) {
	width := g.cfg.Field.Width
	if width == 0 {
		width = g.runtime.ScreenW - 1
	}
	height := g.cfg.Field.Height
	if height == 0 {
		height = g.runtime.ScreenH - 2 // HUD row on top
	}
	return width, height
}

// minScreen returns the smallest screen that fits a playable field: the
// paddle between the walls and the ball starting below the blocks.
func (g *Game) minScreen() (int, int) {
	minW := 2*g.cfg.Paddle.HalfWidth + 2
	minH := g.cfg.Field.BlockTop + g.cfg.Field.BlockRows + g.cfg.Ball.Lift + g.cfg.Paddle.RowOffset
	minW = core.Max(minW, 2*g.cfg.Field.BlockMargin+2)
	return minW + 1, minH + 2
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) State {
	if g.screenTooSmall {
		return g.State()
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.State().Over() {
		g.Reset(g.runtime)
		return g.State()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.State().Over() {
		g.paused = !g.paused
	}

	// Don't update if paused or over
	if g.paused || g.State().Over() {
		return g.State()
	}

	g.tickCount++

	// Paddle moves before the ball, as the player saw it last frame
	if dx := (in.Count(core.ActionRight) - in.Count(core.ActionLeft)) * g.cfg.Paddle.Step; dx != 0 {
		g.paddle.Shift(dx, g.field)
	}

	status, err := g.engine.Advance(g.field, g.paddle, &g.ball)
	if err != nil {
		g.fault = fmt.Errorf("tick %d: %w", g.tickCount, err)
		return g.State()
	}
	g.status = status

	return g.State()
}

// State returns the current game state.
func (g *Game) State() State {
	blocks := 0
	if g.field != nil {
		blocks = g.field.RemainingBlocks()
	}
	return State{
		Status: g.status,
		Blocks: blocks,
		Tick:   g.tickCount,
		Paused: g.paused,
		Fault:  g.fault,
	}
}

// Field returns the field being played.
func (g *Game) Field() *Field {
	return g.field
}

// Paddle returns the current paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Ball returns the current ball.
func (g *Game) Ball() Ball {
	return g.ball
}
