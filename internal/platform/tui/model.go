package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/valentine-flappy/internal/core"
	"github.com/vovakirdan/valentine-flappy/internal/game"
)

// minHeightForHelp is the terminal height below which the help line is
// dropped to leave every row to the game.
const minHeightForHelp = 12

// Model is the Bubble Tea model for one player's session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame *core.InputFrame
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	showHelp   bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model driving the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frame := core.NewInputFrame()

	m := Model{
		session:    session,
		config:     cfg,
		inputFrame: &frame,
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight(cfg.ScreenH))
	return m
}

// gameHeight returns the rows left for the game, reserving one for help
// when the terminal is tall enough.
func (m *Model) gameHeight(total int) int {
	m.showHelp = total >= minHeightForHelp
	if m.showHelp {
		return total - 1
	}
	return total
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

// handleKey processes keyboard input. Actions are buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, m.session.Phase(), m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The world is laid out in
// its own units, so the session carries on at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step(*m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text to
// ~/.valentine/screenshots and returns the file path.
func (m Model) saveScreenshot() (string, error) {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".valentine", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("valentine_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.showHelp {
		view += "\n" + helpStyle.Render(m.help.View(m.keys.Keys().ForPhase(m.session.Phase())))
	}
	return view
}

// Run starts the Bubble Tea program for a local session and blocks until
// the player quits.
func Run(session *game.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
