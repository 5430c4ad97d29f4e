// breakout is a terminal breakout game: a ball bounces inside a walled field,
// clearing blocks while the player keeps it off the floor with a paddle.
//
// Usage:
//
//	breakout play            - Play in this terminal
//	breakout serve           - Start SSH server for remote play
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search order)
//	--log-level <level> - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - clear the blocks in your terminal",
	Long: `Breakout is a terminal game: a ball bounces around a walled field,
destroying blocks, while you keep it off the floor with a paddle.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  breakout play
  breakout play --reflection classic
  breakout serve --ssh :2222
  breakout config --config ./breakout.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

// loadConfig loads the game config from --config or the default search order.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config loaded", "path", flagConfig, "reflection", cfg.Physics.Reflection, "tick_rate", cfg.Physics.TickRate)
	return cfg, nil
}
