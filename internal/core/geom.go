// Package core provides the screen buffer, geometry and input types shared by
// the simulation and its frontends. It has no dependency on any UI toolkit so
// game logic stays pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned cell rectangle used for drawing on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned rectangle in world units.
type Box struct {
	Min mgl64.Vec2 // Top-left corner
	Max mgl64.Vec2 // Bottom-right corner
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{
		Min: mgl64.Vec2{x, y},
		Max: mgl64.Vec2{x + w, y + h},
	}
}

// Closest returns the point of the box nearest to p.
func (b Box) Closest(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		mgl64.Clamp(p.X(), b.Min.X(), b.Max.X()),
		mgl64.Clamp(p.Y(), b.Min.Y(), b.Max.Y()),
	}
}

// Circle is a circle in world units.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

// NewCircle creates a circle centered at (x, y).
func NewCircle(x, y, r float64) Circle {
	return Circle{Center: mgl64.Vec2{x, y}, Radius: r}
}

// HitsBox reports whether the circle touches or overlaps the box.
// Touching counts as a hit.
func (c Circle) HitsBox(b Box) bool {
	d := c.Center.Sub(b.Closest(c.Center))
	return d.Dot(d) <= c.Radius*c.Radius
}

// HitsCircle reports whether two circles touch or overlap.
func (c Circle) HitsCircle(o Circle) bool {
	d := c.Center.Sub(o.Center)
	rr := c.Radius + o.Radius
	return d.Dot(d) <= rr*rr
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return mgl64.Clamp(val, min, max)
}
