package config

import "math"

// Difficulty is the set of parameters the ramp tightens over a run.
type Difficulty struct {
	PipeSpeed  float64 // World units per tick
	PipeGap    float64 // Gap height for newly spawned pipes
	SpawnEvery int     // Ticks between pipe spawns
}

// DifficultyManager computes starting parameters and tightening steps.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables the ramp.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Ramp.Every > 0
}

// Initial returns the parameters a run starts with, interpolated between
// the base values and the bounds by the initial level.
func (d *DifficultyManager) Initial() Difficulty {
	r := d.cfg.Ramp
	level := d.initialLevel
	return Difficulty{
		PipeSpeed:  r.BaseSpeed + level*(r.MaxSpeed-r.BaseSpeed),
		PipeGap:    r.BaseGap - level*(r.BaseGap-r.MinGap),
		SpawnEvery: r.BaseSpawnEvery - int(math.Round(level*float64(r.BaseSpawnEvery-r.MinSpawnEvery))),
	}
}

// Due reports whether the ramp tightens on the given tick of a run.
func (d *DifficultyManager) Due(tick int) bool {
	return d.IsEnabled() && tick > 0 && tick%d.cfg.Ramp.Every == 0
}

// Tighten applies one ramp step: speed up, gap and spawn interval down,
// each clamped to its bound. Values already past a bound are left alone.
func (d *DifficultyManager) Tighten(cur Difficulty) Difficulty {
	r := d.cfg.Ramp
	next := cur
	if cur.PipeSpeed < r.MaxSpeed {
		next.PipeSpeed = math.Min(r.MaxSpeed, cur.PipeSpeed+r.SpeedStep)
	}
	if cur.PipeGap > r.MinGap {
		next.PipeGap = math.Max(r.MinGap, cur.PipeGap-r.GapStep)
	}
	if cur.SpawnEvery > r.MinSpawnEvery {
		next.SpawnEvery = max(r.MinSpawnEvery, cur.SpawnEvery-r.SpawnEveryStep)
	}
	return next
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
