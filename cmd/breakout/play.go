package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagFPS        int
	flagReflection string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout in this terminal",
	Long: `Start a game of breakout sized to the current terminal.

Controls:
  A/Left     - Move paddle left
  D/Right    - Move paddle right
  P/Esc      - Pause
  R          - Restart (after the game ends)
  Ctrl+S     - Save a screenshot to ~/.breakout/screenshots
  Q/Ctrl+C   - Quit

Wall reflection:
  axis     - Side walls flip horizontal motion, the top wall flips vertical
  classic  - Every wall flips horizontal motion (the ball gets stuck at the top)

Examples:
  breakout play
  breakout play --fps 30
  breakout play --reflection classic
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	playCmd.Flags().StringVar(&flagReflection, "reflection", "", "Wall reflection override: axis, classic")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg, err = applyPlayFlags(cfg, flagFPS, flagReflection)
	if err != nil {
		return err
	}

	game, err := breakout.New(cfg)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Physics.TickRate
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	} else {
		logger.Warn("cannot read terminal size, using defaults", "width", rc.ScreenW, "height", rc.ScreenH, "error", termErr)
	}

	st, err := tui.Run(game, rc)
	if err != nil {
		return err
	}

	if !reportOutcome(st) {
		os.Exit(1)
	}
	return nil
}

// reportOutcome logs how the last game ended. It returns false for a fault.
func reportOutcome(st breakout.State) bool {
	switch {
	case st.Fault != nil:
		logger.Error("simulation fault", "tick", st.Tick, "error", st.Fault)
		return false
	case !st.Over():
		logger.Info("quit mid-game", "blocks", st.Blocks, "ticks", st.Tick)
	default:
		logger.Info("game finished", "status", st.Status, "blocks", st.Blocks, "ticks", st.Tick)
	}
	return true
}

// applyPlayFlags overrides the loaded config with --fps and --reflection and
// validates the result.
func applyPlayFlags(cfg config.BreakoutConfig, fps int, reflection string) (config.BreakoutConfig, error) {
	if fps > 0 {
		cfg.Physics.TickRate = fps
	}
	if reflection != "" {
		cfg.Physics.Reflection = reflection
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
