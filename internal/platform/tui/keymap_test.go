package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/valentine-flappy/internal/core"
	"github.com/vovakirdan/valentine-flappy/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	up := tea.KeyMsg{Type: tea.KeyUp}

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		phase  game.Phase
		action core.Action
		quit   bool
	}{
		{"enter starts", enter, game.PhaseIdle, core.ActionStart, false},
		{"space starts", space, game.PhaseIdle, core.ActionStart, false},
		{"w does nothing on title", runeKey('w'), game.PhaseIdle, core.ActionNone, false},
		{"space flaps", space, game.PhaseRunning, core.ActionFlap, false},
		{"up flaps", up, game.PhaseRunning, core.ActionFlap, false},
		{"w flaps", runeKey('w'), game.PhaseRunning, core.ActionFlap, false},
		{"p pauses", runeKey('p'), game.PhaseRunning, core.ActionPause, false},
		{"enter does nothing while running", enter, game.PhaseRunning, core.ActionNone, false},
		{"r ignored while running", runeKey('r'), game.PhaseRunning, core.ActionNone, false},
		{"g opens gift", runeKey('g'), game.PhaseEnded, core.ActionGift, false},
		{"enter opens gift", enter, game.PhaseEnded, core.ActionGift, false},
		{"y answers", runeKey('y'), game.PhaseEnded, core.ActionAnswerYes, false},
		{"o answers", runeKey('o'), game.PhaseEnded, core.ActionAnswerOhYeah, false},
		{"r restarts", runeKey('r'), game.PhaseEnded, core.ActionRestart, false},
		{"space ignored on end screen", space, game.PhaseEnded, core.ActionNone, false},
		{"q quits", runeKey('q'), game.PhaseRunning, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, game.PhaseIdle, core.ActionQuit, true},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg, tt.phase)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q, %v) = %v, %v; expected %v, %v",
					tt.msg.String(), tt.phase, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('w'), game.PhaseRunning, &frame) {
		t.Error("w should not quit")
	}
	if !frame.Has(core.ActionFlap) {
		t.Error("frame should have flap set")
	}

	frame.Clear()
	km.MapKeyToFrame(runeKey('x'), game.PhaseRunning, &frame)
	if len(frame.Actions) != 0 {
		t.Errorf("unbound key should leave the frame empty, got %v", frame.Actions)
	}
}

func TestPhaseHelp(t *testing.T) {
	keys := DefaultKeyMap()

	for _, phase := range []game.Phase{game.PhaseIdle, game.PhaseRunning, game.PhaseEnded} {
		h := keys.ForPhase(phase)
		short := h.ShortHelp()
		if len(short) == 0 {
			t.Errorf("phase %v has no help", phase)
		}
		if last := short[len(short)-1]; last.Help().Desc != "quit" {
			t.Errorf("phase %v: quit should be listed last, got %q", phase, last.Help().Desc)
		}
	}
}
