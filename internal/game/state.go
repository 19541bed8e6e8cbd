// Package game implements the valentine side-scroller: a bird flaps through
// pipe gaps collecting hearts. World owns the per-tick simulation, Render
// draws it, and Session drives the idle/running/ended flow around it.
package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/valentine-flappy/internal/config"
	"github.com/vovakirdan/valentine-flappy/internal/core"
)

// Bird is the player. Pos is the center of its circle.
type Bird struct {
	Pos    mgl64.Vec2
	Radius float64
	VY     float64 // Vertical velocity, negative = up
}

// Circle returns the bird's collision circle.
func (b Bird) Circle() core.Circle {
	return core.Circle{Center: b.Pos, Radius: b.Radius}
}

// Pipe is a pair of vertical segments with a gap between them.
type Pipe struct {
	X         float64 // Left edge
	GapTop    float64 // Bottom of the top segment
	GapHeight float64 // Fixed at spawn time
}

// GapBottom returns the top of the bottom segment.
func (p Pipe) GapBottom() float64 {
	return p.GapTop + p.GapHeight
}

// TopBox returns the collision box of the top segment.
func (p Pipe) TopBox(width float64) core.Box {
	return core.NewBox(p.X, 0, width, p.GapTop)
}

// BottomBox returns the collision box of the bottom segment, which
// extends down to the floor.
func (p Pipe) BottomBox(width, floorY float64) core.Box {
	bottom := p.GapBottom()
	return core.NewBox(p.X, bottom, width, floorY-bottom)
}

// Heart is a pickup placed inside a pipe gap.
type Heart struct {
	Pos       mgl64.Vec2
	Radius    float64
	Collected bool
}

// Circle returns the heart's collision circle.
func (h Heart) Circle() core.Circle {
	return core.Circle{Center: h.Pos, Radius: h.Radius}
}

// Cloud is decoration only; it never affects gameplay.
type Cloud struct {
	X, Y  float64
	Scale float64
}

// Ending is the terminal outcome of a session.
type Ending int

const (
	EndingNone Ending = iota
	EndingWin         // Heart target reached
	EndingLoss        // Lives exhausted
)

// String returns a human-readable name for the ending.
func (e Ending) String() string {
	switch e {
	case EndingNone:
		return "none"
	case EndingWin:
		return "win"
	case EndingLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// State is the complete mutable game state.
// Hearts and Lives survive life losses; everything else is per run.
type State struct {
	Tick   int // Ticks since the current run started
	Hearts int
	Lives  int

	Bird    Bird
	Pipes   []Pipe
	Pickups []Heart // One per pipe, spawned together

	Difficulty config.Difficulty
	SinceSpawn int // Ticks since the last pipe spawn

	Shake  int // Remaining screen-shake ticks
	Clouds []Cloud

	Ending Ending
}
