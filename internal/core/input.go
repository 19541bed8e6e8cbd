package core

// Action represents a semantic input intent, abstracted from physical keys,
// pointer presses or mouse buttons.
type Action int

const (
	ActionNone         Action = iota
	ActionFlap                // Space, Up, W, pointer press - upward impulse
	ActionStart               // Enter/Space on the title screen
	ActionPause               // P - pause/unpause
	ActionRestart             // R - back to the title screen after an ending
	ActionGift                // G/Enter on the end screen - open the gift
	ActionAnswerYes           // Y - first answer
	ActionAnswerOhYeah        // O - second answer
	ActionQuit                // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionGift:
		return "Gift"
	case ActionAnswerYes:
		return "AnswerYes"
	case ActionAnswerOhYeah:
		return "AnswerOhYeah"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
