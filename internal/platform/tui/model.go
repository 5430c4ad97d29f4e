package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// footerRows is the number of terminal rows reserved for the help line.
const footerRows = 1

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithOutcomeHook registers a function called once each time a game ends.
func WithOutcomeHook(fn func(breakout.State)) ModelOption {
	return func(m *Model) {
		m.onOver = fn
	}
}

// WithScreenshotDir sets where ctrl+s writes screen dumps.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// Model is the Bubble Tea model for running a breakout game.
type Model struct {
	game          *breakout.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     breakout.State
	keys          KeyMap
	help          help.Model
	onOver        func(breakout.State)
	screenshotDir string
	notice        string // Replaces the help footer until the next key press
	reported      bool   // Whether the outcome of the current game was reported
	quitting      bool
}

// NewModel creates a Bubble Tea model for the game sized to a terminal of
// cfg.ScreenW x cfg.ScreenH cells.
func NewModel(game *breakout.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerRows, 1))
	m.game.Reset(m.gameRuntime())
	m.gameState = m.game.State()
	return m
}

// gameRuntime is the runtime config seen by the game: the terminal minus the
// help footer.
func (m Model) gameRuntime() core.RuntimeConfig {
	rc := m.config
	rc.ScreenH = core.Max(rc.ScreenH-footerRows, 1)
	return rc
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.notice = "screenshot failed: " + err.Error()
		} else {
			m.notice = "screenshot saved to " + path
		}
		return m, nil
	}
	m.notice = ""

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize refits the game to the new terminal size. The field is sized
// from the screen, so a resize starts a new game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerRows, 1))

	m.game.Reset(m.gameRuntime())
	m.gameState = m.game.State()
	m.reported = false
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.Over()
	m.gameState = m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	// A restart starts a new game to report on
	if wasOver && !m.gameState.Over() {
		m.reported = false
	}

	// Report the outcome (once)
	if m.gameState.Over() && !m.reported {
		if m.onOver != nil {
			m.onOver(m.gameState)
		}
		m.reported = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".breakout", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state after the last tick.
func (m Model) State() breakout.State {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer = m.notice
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts an alt-screen Bubble Tea program for the game and blocks until
// the player quits. It returns the state of the last game played.
func Run(game *breakout.Game, cfg core.RuntimeConfig, opts ...ModelOption) (breakout.State, error) {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return breakout.State{}, fmt.Errorf("run program: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
