package game

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/valentine-flappy/internal/config"
	"github.com/vovakirdan/valentine-flappy/internal/core"
)

// Phase is the session's position in idle -> running -> ended -> idle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	Phase  Phase
	Paused bool
	Hearts int
	Lives  int
	Ending Ending
	Events []Event
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for session events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session drives one player's games: title screen, play, ending, reveal.
// A World exists only while a game is running.
type Session struct {
	cfg    config.ValentineConfig
	logger *log.Logger
	seeds  *rand.Rand

	phase  Phase
	paused bool
	world  *World
	gameID string

	// Kept after the world is discarded so the end screen can show them.
	hearts int
	lives  int
	ending Ending
	reveal Reveal
}

// NewSession creates an idle session. A zero runtime seed picks one from
// the clock; any other seed makes every game of the session reproducible.
func NewSession(cfg config.ValentineConfig, runtime core.RuntimeConfig, opts ...Option) *Session {
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
		seeds:  rand.New(rand.NewSource(seed)),
		phase:  PhaseIdle,
		lives:  cfg.Gameplay.MaxLives,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Paused reports whether a running game is paused.
func (s *Session) Paused() bool { return s.paused }

// Hearts returns the hearts collected in the current or last game.
func (s *Session) Hearts() int { return s.hearts }

// Lives returns the lives left in the current or last game.
func (s *Session) Lives() int { return s.lives }

// Ending returns how the last game ended; EndingNone while idle or running.
func (s *Session) Ending() Ending { return s.ending }

// Reveal returns the end-screen reveal flow.
func (s *Session) Reveal() *Reveal { return &s.reveal }

// World returns the running world, or nil when no game is running.
func (s *Session) World() *World { return s.world }

// Config returns the game config.
func (s *Session) Config() config.ValentineConfig { return s.cfg }

// Start begins a new game from the title screen.
// Returns false if the session is not idle.
func (s *Session) Start() bool {
	if s.phase != PhaseIdle {
		return false
	}

	s.world = NewWorld(s.cfg, s.seeds.Int63())
	s.gameID = uuid.NewString()
	s.phase = PhaseRunning
	s.paused = false
	s.hearts = 0
	s.lives = s.cfg.Gameplay.MaxLives
	s.ending = EndingNone
	s.reveal.Reset()

	s.logger.Info("game started", "game", s.gameID, "lives", s.lives, "target", s.cfg.Gameplay.TargetHearts)
	return true
}

// Flap gives the bird an upward impulse. Ignored unless a game is running
// and not paused.
func (s *Session) Flap() {
	if s.phase != PhaseRunning || s.paused {
		return
	}
	s.world.Flap()
}

// TogglePause pauses or resumes a running game.
func (s *Session) TogglePause() {
	if s.phase == PhaseRunning {
		s.paused = !s.paused
	}
}

// Restart returns to the title screen after an ending.
// Returns false if no game has ended.
func (s *Session) Restart() bool {
	if s.phase != PhaseEnded {
		return false
	}
	s.phase = PhaseIdle
	s.ending = EndingNone
	s.hearts = 0
	s.lives = s.cfg.Gameplay.MaxLives
	s.reveal.Reset()
	return true
}

// Step applies one tick of input and, while running, advances the world.
func (s *Session) Step(in core.InputFrame) StepResult {
	switch s.phase {
	case PhaseIdle:
		if in.Has(core.ActionStart) {
			s.Start()
		}

	case PhaseRunning:
		if in.Has(core.ActionPause) {
			s.TogglePause()
		}
		if s.paused {
			return s.result(nil)
		}
		if in.Has(core.ActionFlap) {
			s.Flap()
		}
		events := s.world.Update()
		s.apply(events)
		return s.result(events)

	case PhaseEnded:
		switch {
		case in.Has(core.ActionRestart):
			s.Restart()
		case in.Has(core.ActionGift):
			s.reveal.Open()
		case in.Has(core.ActionAnswerYes):
			s.chooseAnswer(AnswerYes)
		case in.Has(core.ActionAnswerOhYeah):
			s.chooseAnswer(AnswerOhYeah)
		}
	}

	return s.result(nil)
}

func (s *Session) chooseAnswer(a Answer) {
	if s.reveal.Choose(a) {
		s.logger.Info("answered", "game", s.gameID, "answer", a.Text())
	}
}

// apply copies counters out of the world and handles the ending.
func (s *Session) apply(events []Event) {
	st := s.world.State()
	s.hearts = st.Hearts
	s.lives = st.Lives

	for _, ev := range events {
		switch ev.Kind {
		case EventHeartCollected:
			s.logger.Debug("heart collected", "game", s.gameID, "hearts", ev.Hearts)
		case EventLifeLost:
			s.logger.Info("life lost", "game", s.gameID, "lives", ev.Lives, "tick", ev.Tick)
		}
	}

	if st.Ending == EndingNone {
		return
	}
	s.ending = st.Ending
	s.phase = PhaseEnded
	s.paused = false
	s.world = nil
	s.logger.Info("game ended", "game", s.gameID, "ending", s.ending, "hearts", s.hearts, "lives", s.lives)
}

func (s *Session) result(events []Event) StepResult {
	return StepResult{
		Phase:  s.phase,
		Paused: s.paused,
		Hearts: s.hearts,
		Lives:  s.lives,
		Ending: s.ending,
		Events: events,
	}
}

// EndTitle returns the end-screen heading for an ending.
func EndTitle(e Ending) string {
	if e == EndingWin {
		return "You did it! ♥"
	}
	return "A surprise for you"
}

// Render draws whatever the current phase shows.
func (s *Session) Render(dst *core.Screen) {
	switch s.phase {
	case PhaseRunning:
		Render(dst, s.world.State(), s.cfg)
		if s.paused {
			drawMessageBox(dst, []string{"PAUSED", "", "Press P to resume"})
		}
	case PhaseEnded:
		dst.Clear()
		drawMessageBox(dst, s.endLines())
	default:
		dst.Clear()
		drawMessageBox(dst, []string{
			"Flappy Valentine",
			"",
			fmt.Sprintf("Catch %d hearts %c", s.cfg.Gameplay.TargetHearts, HeartChar),
			fmt.Sprintf("You have %d lives", s.cfg.Gameplay.MaxLives),
			"",
			"Press Enter to start",
		})
	}
}

func (s *Session) endLines() []string {
	lines := []string{
		EndTitle(s.ending),
		"",
		fmt.Sprintf("Hearts: %d/%d   Lives: %d", s.hearts, s.cfg.Gameplay.TargetHearts, s.lives),
		"",
	}
	switch s.reveal.Stage() {
	case RevealClosed:
		lines = append(lines, "[ G ] open your gift")
	case RevealQuestion:
		lines = append(lines, Question, "", "[ Y ] YES   [ O ] Oh YEAH")
	case RevealAnswered:
		lines = append(lines, Question, "", s.reveal.Answer().Text())
	}
	return append(lines, "", "Press R to play again")
}

// drawMessageBox draws centered lines inside a box.
func drawMessageBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHeart)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, boxY+1+i, l, lineColor(i, l))
	}
}

// lineColor highlights the title and dims key hints.
func lineColor(i int, line string) core.Color {
	switch {
	case i == 0:
		return core.ColorHeart
	case strings.HasPrefix(line, "Press") || strings.HasPrefix(line, "["):
		return core.ColorDim
	default:
		return core.ColorText
	}
}
