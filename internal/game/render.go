package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/valentine-flappy/internal/config"
	"github.com/vovakirdan/valentine-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar        = '●'
	HeartChar       = '♥'
	PipeChar        = '█'
	PipeCapTop      = '▄'
	PipeCapBottom   = '▀'
	GroundChar      = '▒'
	GroundStripe    = '▀'
	CloudEdgeLeft   = '('
	CloudEdgeRight  = ')'
	CloudFill       = '~'
	groundStripeLen = 40 // World units per stripe period
)

// AlmostThere is the encouragement shown close to the heart target.
const AlmostThere = "Almost there ♥"

var shakePattern = [...]int{-1, 1, 0, 1, -1, 0}

// BirdTilt returns the bird's rotation in radians for a vertical velocity.
// Climbing tilts up (negative), falling tilts down.
func BirdTilt(vy float64) float64 {
	return core.ClampF(vy/10, -0.6, 0.8)
}

// ShakeOffset returns a small horizontal jitter while the shake timer runs.
// It is derived from the state so rendering stays deterministic.
func ShakeOffset(s *State) int {
	if s.Shake <= 0 {
		return 0
	}
	return shakePattern[(s.Tick+s.Shake)%len(shakePattern)]
}

// Encouraging reports whether the "almost there" overlay should show.
func Encouraging(s *State, cfg config.ValentineConfig) bool {
	return s.Hearts >= cfg.Gameplay.EncourageAt && s.Hearts < cfg.Gameplay.TargetHearts
}

// beakRune picks the beak glyph for a tilt angle.
func beakRune(tilt float64) rune {
	switch {
	case tilt < -0.2:
		return '/'
	case tilt > 0.2:
		return '\\'
	default:
		return '>'
	}
}

// viewport maps world units to screen cells. Row 0 is the HUD.
type viewport struct {
	sx, sy float64
	dx     int
}

func newViewport(dst *core.Screen, cfg config.ValentineConfig, dx int) viewport {
	return viewport{
		sx: float64(dst.Width()) / cfg.World.Width,
		sy: float64(dst.Height()-1) / cfg.World.Height,
		dx: dx,
	}
}

func (v viewport) col(x float64) int { return int(x*v.sx) + v.dx }
func (v viewport) row(y float64) int { return 1 + int(y*v.sy) }

// Render draws the world into dst. It reads the state and never changes it.
func Render(dst *core.Screen, s *State, cfg config.ValentineConfig) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	v := newViewport(dst, cfg, ShakeOffset(s))

	renderBackground(dst, s, cfg, v)
	for _, p := range s.Pipes {
		renderPipe(dst, p, cfg, v)
	}
	for _, h := range s.Pickups {
		if !h.Collected {
			dst.SetColor(v.col(h.Pos.X()), v.row(h.Pos.Y()), HeartChar, core.ColorHeart)
		}
	}
	renderBird(dst, s.Bird, v)

	if Encouraging(s, cfg) {
		dst.DrawTextCentered(2, AlmostThere, core.ColorText)
	}
	renderHUD(dst, s.Hearts, s.Lives, cfg)
}

func renderBackground(dst *core.Screen, s *State, cfg config.ValentineConfig, v viewport) {
	for _, c := range s.Clouds {
		n := max(3, int(50*c.Scale*v.sx))
		text := string(CloudEdgeLeft) + strings.Repeat(string(CloudFill), n-2) + string(CloudEdgeRight)
		dst.DrawTextColor(v.col(c.X)-n/2, v.row(c.Y), text, core.ColorCloud)
	}

	floorRow := v.row(cfg.World.FloorY)
	offset := float64((s.Tick * 2) % groundStripeLen)
	for x := 0; x < dst.Width(); x++ {
		wx := int(float64(x)/v.sx + offset)
		r := GroundChar
		color := core.ColorGround
		if wx%groundStripeLen < groundStripeLen/2 {
			r = GroundStripe
			color = core.ColorGroundStripe
		}
		dst.SetColor(x, floorRow, r, color)
	}
	for y := floorRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGround)
	}
}

func renderPipe(dst *core.Screen, p Pipe, cfg config.ValentineConfig, v viewport) {
	x0 := v.col(p.X)
	x1 := max(x0+1, v.col(p.X+cfg.Pipes.Width))
	w := x1 - x0

	topEnd := v.row(p.GapTop) // exclusive
	dst.DrawRect(core.NewRect(x0, 1, w, topEnd-1), PipeChar, core.ColorPipe)
	if topEnd > 1 {
		dst.DrawHLine(x0, topEnd-1, w, PipeCapTop, core.ColorPipeCap)
	}

	bottomStart := v.row(p.GapBottom())
	floorRow := v.row(cfg.World.FloorY)
	dst.DrawRect(core.NewRect(x0, bottomStart, w, floorRow-bottomStart), PipeChar, core.ColorPipe)
	if bottomStart < floorRow {
		dst.DrawHLine(x0, bottomStart, w, PipeCapBottom, core.ColorPipeCap)
	}
}

func renderBird(dst *core.Screen, b Bird, v viewport) {
	x, y := v.col(b.Pos.X()), v.row(b.Pos.Y())
	dst.SetColor(x, y, BirdChar, core.ColorBird)
	dst.SetColor(x+1, y, beakRune(BirdTilt(b.VY)), core.ColorBeak)
}

func renderHUD(dst *core.Screen, hearts, lives int, cfg config.ValentineConfig) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColor(1, 0, fmt.Sprintf("%c %d/%d", HeartChar, hearts, cfg.Gameplay.TargetHearts), core.ColorHeart)
	dst.DrawTextColor(12, 0, fmt.Sprintf("Lives: %d", lives), core.ColorText)
}
