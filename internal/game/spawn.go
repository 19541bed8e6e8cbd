package game

import "github.com/go-gl/mathgl/mgl64"

// spawnPipe appends a pipe just past the right edge with a random gap
// position, and a heart centered horizontally in the gap. The heart's
// height is random but always at least SafePad away from both gap edges.
func (w *World) spawnPipe() {
	s := &w.state
	gap := s.Difficulty.PipeGap

	gapTop := w.randRange(w.cfg.Pipes.MarginTop, w.cfg.World.FloorY-w.cfg.Pipes.MarginBottom-gap)
	x := w.cfg.World.Width + w.cfg.Pipes.SpawnOffset

	pipe := Pipe{X: x, GapTop: gapTop, GapHeight: gap}
	s.Pipes = append(s.Pipes, pipe)

	pad := w.cfg.Hearts.SafePad
	heartY := w.randRange(gapTop+pad, pipe.GapBottom()-pad)

	s.Pickups = append(s.Pickups, Heart{
		Pos:    mgl64.Vec2{x + w.cfg.Pipes.Width/2, heartY},
		Radius: w.cfg.Hearts.Radius,
	})
}

// randRange returns a uniform value in [lo, hi). A degenerate range
// collapses to its midpoint.
func (w *World) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + w.rng.Float64()*(hi-lo)
}
