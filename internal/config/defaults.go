package config

import (
	_ "embed"
)

//go:embed defaults/starcatch.yaml
var defaultStarcatchYAML []byte

// DefaultStarcatchConfig returns the default Star Catcher configuration.
func DefaultStarcatchConfig() StarcatchConfig {
	return StarcatchConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity: 300,
		},
		Player: PlayerConfig{
			X:         100,
			Y:         450,
			Bounce:    0.2,
			RunSpeed:  160,
			JumpSpeed: 330,
		},
		Stars: StarsConfig{
			Count:     12,
			StartX:    12,
			StepX:     70,
			BounceMin: 0.4,
			BounceMax: 0.8,
		},
		Bombs: BombsConfig{
			Y:      16,
			Bounce: 1,
			SpeedX: 200,
			SpeedY: 20,
		},
		Platforms: []PlatformConfig{
			{X: 400, Y: 568, Scale: 2},
			{X: 600, Y: 400, Scale: 1},
			{X: 50, Y: 250, Scale: 1},
			{X: 750, Y: 220, Scale: 1},
		},
		Scoring: ScoringConfig{
			StarPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
