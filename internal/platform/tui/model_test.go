package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/valentine-flappy/internal/config"
	"github.com/vovakirdan/valentine-flappy/internal/core"
	"github.com/vovakirdan/valentine-flappy/internal/game"
)

func newTestModel(w, h int) (Model, *game.Session) {
	runtime := core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 1}
	session := game.NewSession(config.DefaultValentineConfig(), runtime)
	return NewModel(session, runtime, nil), session
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, expected Model", next)
		}
	}
	return m
}

func TestModelStartsOnTick(t *testing.T) {
	m, session := newTestModel(80, 30)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if session.Phase() != game.PhaseIdle {
		t.Fatal("keys should only take effect on the next tick")
	}

	send(t, m, TickMsg{})
	if session.Phase() != game.PhaseRunning {
		t.Errorf("Phase = %v, expected running after tick", session.Phase())
	}
}

func TestModelInputClearedAfterTick(t *testing.T) {
	m, session := newTestModel(80, 30)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})

	m = send(t, m, runeKey('p'), TickMsg{})
	if !session.Paused() {
		t.Fatal("expected paused")
	}

	// The pause key must not be replayed on later ticks
	send(t, m, TickMsg{}, TickMsg{})
	if !session.Paused() {
		t.Error("pause toggled again without a key press")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, session := newTestModel(80, 30)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{}, TickMsg{})
	world := session.World()

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if session.World() != world || session.Phase() != game.PhaseRunning {
		t.Error("resize should not restart the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39 with a help line", m.screen.Width(), m.screen.Height())
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if m.screen.Height() != 10 {
		t.Errorf("small terminal should give every row to the game, got height %d", m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(80, 30)

	view := m.View()
	if !strings.Contains(view, "Flappy Valentine") {
		t.Error("title screen should be shown before the game starts")
	}
	if !strings.Contains(view, "start") {
		t.Error("help line should list the start key")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if view := m.View(); !strings.Contains(view, "Lives: 3") {
		t.Error("running view should show the HUD")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(80, 30)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("quitting model should render nothing, got %q", view)
	}
}
