package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/valentine-flappy/internal/core"
	"github.com/vovakirdan/valentine-flappy/internal/game"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Start      key.Binding
	Flap       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Gift       key.Binding
	Yes        key.Binding
	OhYeah     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up/w", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Gift: key.NewBinding(
			key.WithKeys("g", "enter"),
			key.WithHelp("g", "open gift"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "YES!!!"),
		),
		OhYeah: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Oh YEAH!!!"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// phaseHelp exposes only the bindings that do something in a phase.
type phaseHelp struct {
	keys  KeyMap
	phase game.Phase
}

// ForPhase returns the help entries for the given phase.
func (k KeyMap) ForPhase(phase game.Phase) help.KeyMap {
	return phaseHelp{keys: k, phase: phase}
}

// ShortHelp implements help.KeyMap.
func (h phaseHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.phase {
	case game.PhaseRunning:
		return []key.Binding{k.Flap, k.Pause, k.Screenshot, k.Quit}
	case game.PhaseEnded:
		return []key.Binding{k.Gift, k.Yes, k.OhYeah, k.Restart, k.Quit}
	default:
		return []key.Binding{k.Start, k.Quit}
	}
}

// FullHelp implements help.KeyMap.
func (h phaseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Space means start on the title screen and flap during play; Enter means
// start on the title screen and open the gift on the end screen.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action for the given phase.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase game.Phase) (action core.Action, isQuit bool) {
	k := km.keys

	if key.Matches(msg, k.Quit) {
		return core.ActionQuit, true
	}

	switch phase {
	case game.PhaseIdle:
		if key.Matches(msg, k.Start) {
			return core.ActionStart, false
		}
	case game.PhaseRunning:
		switch {
		case key.Matches(msg, k.Flap):
			return core.ActionFlap, false
		case key.Matches(msg, k.Pause):
			return core.ActionPause, false
		}
	case game.PhaseEnded:
		switch {
		case key.Matches(msg, k.Gift):
			return core.ActionGift, false
		case key.Matches(msg, k.Yes):
			return core.ActionAnswerYes, false
		case key.Matches(msg, k.OhYeah):
			return core.ActionAnswerOhYeah, false
		case key.Matches(msg, k.Restart):
			return core.ActionRestart, false
		}
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, phase game.Phase, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg, phase)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
