package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration parses but cannot
// produce a playable game.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load loads the game configuration.
// Search order: customPath -> ~/.valentine/configs/valentine.yaml ->
// ./configs/valentine.yaml -> embedded default.
// Files only need to set the values they change; everything else keeps its
// default. A custom path that cannot be read, parsed or validated is an error;
// a broken file in the other locations is skipped.
func Load(customPath string) (ValentineConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ValentineConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ValentineConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("valentine.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "valentine.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultValentineYAML)
	if err != nil {
		return DefaultValentineConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (ValentineConfig, error) {
	cfg := DefaultValentineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ValentineConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return ValentineConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg ValentineConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
	}
	return data, nil
}

// Validate checks that a config produces a playable, well-formed game.
// Every problem found is reported; the error wraps ErrInvalidConfig.
func Validate(cfg ValentineConfig) error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	w, b, p, h, r := cfg.World, cfg.Bird, cfg.Pipes, cfg.Hearts, cfg.Difficulty.Ramp

	check(w.Width > 0 && w.Height > 0, "world size must be positive")
	check(w.FloorY > 0 && w.FloorY <= w.Height, "floor_y must be within (0, height]")
	check(b.Radius > 0, "bird radius must be positive")
	check(b.Y-b.Radius >= 0 && b.Y+b.Radius < w.FloorY, "bird must spawn between the top and the floor")
	check(b.X-b.Radius >= 0 && b.X+b.Radius <= w.Width, "bird must spawn inside the world width")
	check(cfg.Physics.Gravity > 0, "gravity must be positive")
	check(cfg.Physics.FlapImpulse < 0, "flap_impulse must be negative (upward)")
	check(p.Width > 0, "pipe width must be positive")
	check(p.MarginTop >= 0 && p.MarginBottom >= 0, "pipe margins must not be negative")
	check(h.Radius > 0, "heart radius must be positive")
	check(h.SafePad > 0, "heart safe_pad must be positive")
	check(h.DespawnX <= 0, "hearts despawn_x must not be positive")

	check(cfg.Difficulty.InitialLevel >= 0 && cfg.Difficulty.InitialLevel <= 1, "initial_level must be within [0, 1]")
	check(r.Every > 0, "ramp every must be positive")
	check(r.BaseSpeed > 0 && r.BaseSpeed <= r.MaxSpeed, "need 0 < base_speed <= max_speed")
	check(r.SpeedStep >= 0, "speed_step must not be negative")
	check(r.MinGap > 0 && r.MinGap <= r.BaseGap, "need 0 < min_gap <= base_gap")
	check(r.GapStep >= 0, "gap_step must not be negative")
	check(r.MinGap > 2*h.SafePad, "min_gap %.1f leaves no room for a heart with safe_pad %.1f", r.MinGap, h.SafePad)
	check(p.MarginTop+r.BaseGap+p.MarginBottom <= w.FloorY, "pipe margins plus base_gap exceed floor_y")
	check(r.MinSpawnEvery > 0 && r.MinSpawnEvery <= r.BaseSpawnEvery, "need 0 < min_spawn_every <= base_spawn_every")
	check(r.SpawnEveryStep >= 0, "spawn_every_step must not be negative")

	check(cfg.Gameplay.TargetHearts > 0, "target_hearts must be positive")
	check(cfg.Gameplay.EncourageAt >= 0 && cfg.Gameplay.EncourageAt <= cfg.Gameplay.TargetHearts,
		"encourage_at must be within [0, target_hearts]")
	check(cfg.Gameplay.MaxLives > 0, "max_lives must be positive")
	check(cfg.Gameplay.ShakeTicks >= 0, "shake_ticks must not be negative")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".valentine", "configs", filename)
}
