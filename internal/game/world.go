package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/valentine-flappy/internal/config"
)

// World runs the simulation for one session. It is not safe for concurrent
// use; exactly one goroutine steps and renders it.
type World struct {
	cfg    config.ValentineConfig
	diff   *config.DifficultyManager
	rng    *rand.Rand
	state  State
	events []Event
}

// NewWorld creates a fresh world: full lives, no hearts, first run ready.
// The config is expected to have passed config.Validate.
func NewWorld(cfg config.ValentineConfig, seed int64) *World {
	w := &World{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
		rng:  rand.New(rand.NewSource(seed)),
	}

	w.state = State{
		Hearts:  0,
		Lives:   cfg.Gameplay.MaxLives,
		Pipes:   make([]Pipe, 0, 8),
		Pickups: make([]Heart, 0, 8),
		Clouds:  make([]Cloud, 0, len(cfg.Clouds.Items)),
	}
	for _, c := range cfg.Clouds.Items {
		w.state.Clouds = append(w.state.Clouds, Cloud{X: c.X, Y: c.Y, Scale: c.Scale})
	}
	w.resetRun()
	return w
}

// State returns the live state for rendering. Callers must not modify it.
func (w *World) State() *State {
	return &w.state
}

// Config returns the config the world was built with.
func (w *World) Config() config.ValentineConfig {
	return w.cfg
}

// Flap sets the bird's velocity to the flap impulse.
// Ignored once the world has ended.
func (w *World) Flap() {
	if w.state.Ending != EndingNone {
		return
	}
	w.state.Bird.VY = w.cfg.Physics.FlapImpulse
}

// Update advances the world by one tick and returns what happened.
// After an ending it does nothing.
func (w *World) Update() []Event {
	w.events = nil
	s := &w.state
	if s.Ending != EndingNone {
		return nil
	}

	s.Tick++
	if s.Shake > 0 {
		s.Shake--
	}
	w.driftClouds()

	// Gravity
	b := &s.Bird
	b.VY += w.cfg.Physics.Gravity
	b.Pos[1] += b.VY

	// Top clamps; floor costs a life
	if b.Pos.Y()-b.Radius < 0 {
		b.Pos[1] = b.Radius
		b.VY = 0
	}
	if b.Pos.Y()+b.Radius > w.cfg.World.FloorY {
		w.loseLife()
		return w.events
	}

	s.SinceSpawn++
	if s.SinceSpawn >= s.Difficulty.SpawnEvery {
		s.SinceSpawn = 0
		w.spawnPipe()
	}

	if w.advancePipes() {
		w.loseLife()
		return w.events
	}
	w.prunePipes()

	if w.advanceHearts() {
		return w.events
	}
	w.pruneHearts()

	if w.diff.Due(s.Tick) {
		s.Difficulty = w.diff.Tighten(s.Difficulty)
	}

	return w.events
}

// advancePipes moves pipes left and reports whether the bird hit one.
func (w *World) advancePipes() bool {
	s := &w.state
	width := w.cfg.Pipes.Width
	floorY := w.cfg.World.FloorY

	for i := range s.Pipes {
		p := &s.Pipes[i]
		p.X -= s.Difficulty.PipeSpeed

		bird := s.Bird.Circle()
		if bird.HitsBox(p.TopBox(width)) || bird.HitsBox(p.BottomBox(width, floorY)) {
			return true
		}
	}
	return false
}

// prunePipes drops pipes that are fully off-screen to the left.
func (w *World) prunePipes() {
	limit := -(w.cfg.Pipes.Width + w.cfg.Pipes.DespawnMargin)
	kept := w.state.Pipes[:0]
	for _, p := range w.state.Pipes {
		if p.X > limit {
			kept = append(kept, p)
		}
	}
	w.state.Pipes = kept
}

// advanceHearts moves hearts with the pipes and collects touched ones.
// Reports whether the heart target was reached.
func (w *World) advanceHearts() bool {
	s := &w.state
	bird := s.Bird.Circle()

	for i := range s.Pickups {
		h := &s.Pickups[i]
		h.Pos[0] -= s.Difficulty.PipeSpeed

		if h.Collected || !bird.HitsCircle(h.Circle()) {
			continue
		}
		h.Collected = true
		s.Hearts++
		w.emit(EventHeartCollected)

		if s.Hearts >= w.cfg.Gameplay.TargetHearts {
			s.Ending = EndingWin
			w.emit(EventWon)
			return true
		}
	}
	return false
}

// pruneHearts drops collected hearts and hearts past the left edge.
func (w *World) pruneHearts() {
	kept := w.state.Pickups[:0]
	for _, h := range w.state.Pickups {
		if !h.Collected && h.Pos.X() > w.cfg.Hearts.DespawnX {
			kept = append(kept, h)
		}
	}
	w.state.Pickups = kept
}

// loseLife applies the life-loss policy: end the session when no lives
// remain, otherwise start a new run keeping hearts and lives.
func (w *World) loseLife() {
	s := &w.state
	s.Lives--
	s.Shake = w.cfg.Gameplay.ShakeTicks
	w.emit(EventLifeLost)

	if s.Lives <= 0 {
		s.Lives = 0
		s.Ending = EndingLoss
		w.emit(EventLost)
		return
	}
	w.resetRun()
}

// resetRun restores per-run state. Hearts, lives, shake and clouds are kept.
func (w *World) resetRun() {
	s := &w.state
	s.Tick = 0
	s.SinceSpawn = 0
	s.Pipes = s.Pipes[:0]
	s.Pickups = s.Pickups[:0]
	s.Bird = Bird{
		Pos:    mgl64.Vec2{w.cfg.Bird.X, w.cfg.Bird.Y},
		Radius: w.cfg.Bird.Radius,
	}
	s.Difficulty = w.diff.Initial()
}

// driftClouds scrolls the decorative clouds, wrapping them around.
func (w *World) driftClouds() {
	cc := w.cfg.Clouds
	for i := range w.state.Clouds {
		c := &w.state.Clouds[i]
		c.X -= cc.Drift * c.Scale
		if c.X < -cc.WrapMargin {
			c.X = w.cfg.World.Width + cc.WrapMargin
		}
	}
}

func (w *World) emit(kind EventKind) {
	w.events = append(w.events, Event{
		Kind:   kind,
		Tick:   w.state.Tick,
		Hearts: w.state.Hearts,
		Lives:  w.state.Lives,
	})
}
