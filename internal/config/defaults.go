package config

import (
	_ "embed"
)

//go:embed defaults/valentine.yaml
var defaultValentineYAML []byte

// DefaultValentineConfig returns the built-in configuration.
// It mirrors defaults/valentine.yaml and is used when the embedded file
// cannot be parsed.
func DefaultValentineConfig() ValentineConfig {
	return ValentineConfig{
		World: WorldConfig{
			Width:  480,
			Height: 640,
			FloorY: 600,
		},
		Bird: BirdConfig{
			X:      140,
			Y:      260,
			Radius: 16,
		},
		Physics: PhysicsConfig{
			Gravity:     0.42,
			FlapImpulse: -7.2,
		},
		Pipes: PipesConfig{
			Width:         70,
			MarginTop:     60,
			MarginBottom:  160,
			SpawnOffset:   20,
			DespawnMargin: 40,
		},
		Hearts: HeartsConfig{
			Radius:   12,
			SafePad:  26,
			DespawnX: -60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Ramp: RampConfig{
				Every:          600, // 10 seconds at 60fps
				BaseSpeed:      2.6,
				SpeedStep:      0.15,
				MaxSpeed:       3.4,
				BaseGap:        155,
				GapStep:        6,
				MinGap:         135,
				BaseSpawnEvery: 95,
				SpawnEveryStep: 2,
				MinSpawnEvery:  85,
			},
		},
		Gameplay: GameplayConfig{
			TargetHearts: 5,
			MaxLives:     3,
			EncourageAt:  3,
			ShakeTicks:   10,
		},
		Clouds: CloudsConfig{
			Drift:      0.35,
			WrapMargin: 120,
			Items: []CloudConfig{
				{X: 40, Y: 80, Scale: 1.0},
				{X: 260, Y: 120, Scale: 1.2},
				{X: 170, Y: 40, Scale: 0.9},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultValentineYAML
}
