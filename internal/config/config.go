// Package config provides YAML-based game configuration loading, validation
// and difficulty management for the valentine game.
package config

// ValentineConfig contains all tuning values for the game.
type ValentineConfig struct {
	World      WorldConfig      `yaml:"world"`
	Bird       BirdConfig       `yaml:"bird"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Pipes      PipesConfig      `yaml:"pipes"`
	Hearts     HeartsConfig     `yaml:"hearts"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Clouds     CloudsConfig     `yaml:"clouds"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FloorY float64 `yaml:"floor_y"` // Touching this line costs a life
}

// BirdConfig defines the bird spawn point and size.
type BirdConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// PhysicsConfig defines per-tick physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set on flap (negative = up)
}

// PipesConfig defines pipe geometry and placement.
type PipesConfig struct {
	Width         float64 `yaml:"width"`
	MarginTop     float64 `yaml:"margin_top"`     // Minimum gap top
	MarginBottom  float64 `yaml:"margin_bottom"`  // Minimum distance from gap bottom to floor
	SpawnOffset   float64 `yaml:"spawn_offset"`   // Spawn this far past the right edge
	DespawnMargin float64 `yaml:"despawn_margin"` // Extra distance past the left edge before removal
}

// HeartsConfig defines heart pickups.
type HeartsConfig struct {
	Radius   float64 `yaml:"radius"`
	SafePad  float64 `yaml:"safe_pad"`  // Keeps hearts away from the gap edges
	DespawnX float64 `yaml:"despawn_x"` // Hearts at or left of this x are removed
}

// DifficultyConfig defines the difficulty ramp.
type DifficultyConfig struct {
	Enabled      bool       `yaml:"enabled"`
	InitialLevel float64    `yaml:"initial_level"` // 0.0 = base values, 1.0 = bounds
	Ramp         RampConfig `yaml:"ramp"`
}

// RampConfig defines base values, per-step changes and bounds.
type RampConfig struct {
	Every          int     `yaml:"every"` // Ticks between tightening steps
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedStep      float64 `yaml:"speed_step"`
	MaxSpeed       float64 `yaml:"max_speed"`
	BaseGap        float64 `yaml:"base_gap"`
	GapStep        float64 `yaml:"gap_step"`
	MinGap         float64 `yaml:"min_gap"`
	BaseSpawnEvery int     `yaml:"base_spawn_every"`
	SpawnEveryStep int     `yaml:"spawn_every_step"`
	MinSpawnEvery  int     `yaml:"min_spawn_every"`
}

// GameplayConfig defines win/loss thresholds.
type GameplayConfig struct {
	TargetHearts int `yaml:"target_hearts"`
	MaxLives     int `yaml:"max_lives"`
	EncourageAt  int `yaml:"encourage_at"` // Show "Almost there" from this many hearts
	ShakeTicks   int `yaml:"shake_ticks"`
}

// CloudsConfig defines the decorative clouds.
type CloudsConfig struct {
	Drift      float64       `yaml:"drift"`       // Base leftward speed, scaled per cloud
	WrapMargin float64       `yaml:"wrap_margin"` // Off-screen distance before wrapping
	Items      []CloudConfig `yaml:"items"`
}

// CloudConfig is one cloud's start position and size.
type CloudConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// return "" which means "use the config as is".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *ValentineConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxLives = 5
	case DifficultyHard:
		cfg.Gameplay.MaxLives = 2
	}
}
