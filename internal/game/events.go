package game

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventHeartCollected EventKind = iota
	EventLifeLost
	EventWon
	EventLost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventHeartCollected:
		return "heart_collected"
	case EventLifeLost:
		return "life_lost"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event reports a score, lives or ending change. Frontends use events to
// refresh the hearts and lives displays only when they change.
type Event struct {
	Kind   EventKind
	Tick   int
	Hearts int
	Lives  int
}
