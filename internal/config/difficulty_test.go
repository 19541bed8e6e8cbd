package config

import (
	"math"
	"testing"
)

func TestDifficultyInitial(t *testing.T) {
	cfg := DefaultValentineConfig().Difficulty

	d := NewDifficultyManager(cfg)
	got := d.Initial()
	if got.PipeSpeed != 2.6 || got.PipeGap != 155 || got.SpawnEvery != 95 {
		t.Errorf("Initial() at level 0 = %+v, expected base values", got)
	}

	d.SetInitialLevel(1.0)
	got = d.Initial()
	if math.Abs(got.PipeSpeed-3.4) > 1e-9 || got.PipeGap != 135 || got.SpawnEvery != 85 {
		t.Errorf("Initial() at level 1 = %+v, expected bounds", got)
	}

	d.SetInitialLevel(5.0) // Clamped to 1
	if d.Initial() != got {
		t.Error("SetInitialLevel should clamp to 1.0")
	}
}

func TestDifficultyDue(t *testing.T) {
	cfg := DefaultValentineConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if d.Due(0) {
		t.Error("tick 0 should never tighten")
	}
	if d.Due(599) {
		t.Error("tick 599 should not tighten")
	}
	if !d.Due(600) || !d.Due(1200) {
		t.Error("multiples of ramp.every should tighten")
	}

	d.SetEnabled(false)
	if d.Due(600) {
		t.Error("disabled ramp should never tighten")
	}
}

func TestDifficultyTightenMonotonicWithinBounds(t *testing.T) {
	cfg := DefaultValentineConfig().Difficulty
	d := NewDifficultyManager(cfg)

	cur := d.Initial()
	for i := 0; i < 50; i++ {
		next := d.Tighten(cur)
		if next.PipeSpeed < cur.PipeSpeed {
			t.Fatalf("step %d: speed decreased %f -> %f", i, cur.PipeSpeed, next.PipeSpeed)
		}
		if next.PipeGap > cur.PipeGap {
			t.Fatalf("step %d: gap increased %f -> %f", i, cur.PipeGap, next.PipeGap)
		}
		if next.SpawnEvery > cur.SpawnEvery {
			t.Fatalf("step %d: spawn interval increased %d -> %d", i, cur.SpawnEvery, next.SpawnEvery)
		}
		if next.PipeSpeed > cfg.Ramp.MaxSpeed || next.PipeGap < cfg.Ramp.MinGap || next.SpawnEvery < cfg.Ramp.MinSpawnEvery {
			t.Fatalf("step %d: %+v escaped bounds", i, next)
		}
		cur = next
	}

	if cur.PipeSpeed != cfg.Ramp.MaxSpeed || cur.PipeGap != cfg.Ramp.MinGap || cur.SpawnEvery != cfg.Ramp.MinSpawnEvery {
		t.Errorf("after many steps expected to sit at bounds, got %+v", cur)
	}
}
