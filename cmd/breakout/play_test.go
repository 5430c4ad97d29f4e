package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestApplyPlayFlags(t *testing.T) {
	tests := []struct {
		name       string
		fps        int
		reflection string
		wantRate   int
		wantMode   string
		wantErr    bool
	}{
		{"no overrides", 0, "", 16, config.ReflectionAxis, false},
		{"fps override", 30, "", 30, config.ReflectionAxis, false},
		{"reflection override", 0, "classic", 16, config.ReflectionClassic, false},
		{"fps above range", 5000, "", 0, "", true},
		{"unknown reflection", 0, "mirror", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := applyPlayFlags(config.DefaultBreakoutConfig(), tt.fps, tt.reflection)
			if tt.wantErr {
				if !errors.Is(err, config.ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyPlayFlags() error: %v", err)
			}
			if cfg.Physics.TickRate != tt.wantRate || cfg.Physics.Reflection != tt.wantMode {
				t.Errorf("got tick_rate=%d reflection=%s, expected %d %s",
					cfg.Physics.TickRate, cfg.Physics.Reflection, tt.wantRate, tt.wantMode)
			}
		})
	}
}

func TestReportOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	tests := []struct {
		name   string
		state  breakout.State
		ok     bool
		expect string
	}{
		{"quit while playing", breakout.State{Status: breakout.StatusPlaying, Tick: 40}, true, "quit mid-game"},
		{"lost", breakout.State{Status: breakout.StatusLost, Tick: 90}, true, "game finished"},
		{"won", breakout.State{Status: breakout.StatusWon}, true, "game finished"},
		{"fault", breakout.State{Fault: breakout.ErrReflectionLimit}, false, "simulation fault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			if got := reportOutcome(tt.state); got != tt.ok {
				t.Errorf("reportOutcome() = %v, expected %v", got, tt.ok)
			}
			if !strings.Contains(buf.String(), tt.expect) {
				t.Errorf("log %q should contain %q", buf.String(), tt.expect)
			}
		})
	}
}
