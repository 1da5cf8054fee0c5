// Package config provides YAML-based game configuration loading and
// difficulty management for Star Catcher.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for configurations the game cannot run with.
var ErrInvalid = errors.New("config: invalid")

// StarcatchConfig contains all configuration for the Star Catcher game.
type StarcatchConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Stars      StarsConfig      `yaml:"stars"`
	Bombs      BombsConfig      `yaml:"bombs"`
	Platforms  []PlatformConfig `yaml:"platforms"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig is the size of the play field in world units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines world physics.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // Downward acceleration, units/s^2
}

// PlayerConfig defines the player's spawn point and movement.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Bounce    float64 `yaml:"bounce"`
	RunSpeed  float64 `yaml:"run_speed"`  // Horizontal speed while a direction is held
	JumpSpeed float64 `yaml:"jump_speed"` // Upward speed applied on jump (positive number)
}

// StarsConfig defines the row of collectible stars.
type StarsConfig struct {
	Count     int     `yaml:"count"`
	StartX    float64 `yaml:"start_x"`
	StepX     float64 `yaml:"step_x"`
	BounceMin float64 `yaml:"bounce_min"`
	BounceMax float64 `yaml:"bounce_max"`
}

// BombsConfig defines bombs spawned after every cleared round of stars.
type BombsConfig struct {
	Y      float64 `yaml:"y"`
	Bounce float64 `yaml:"bounce"`
	SpeedX float64 `yaml:"speed_x"` // Horizontal speed is drawn from [-speed_x, speed_x]
	SpeedY float64 `yaml:"speed_y"`
}

// PlatformConfig places one static platform by its center.
type PlatformConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	StarPoints int `yaml:"star_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "rounds" or "none"
	MaxAt int    `yaml:"max_at"` // Score, ticks or rounds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to bomb speed at max difficulty
}

// Validate reports the first setting that would break the game.
func (c StarcatchConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas %vx%v", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Stars.Count <= 0:
		return fmt.Errorf("%w: stars.count %d", ErrInvalid, c.Stars.Count)
	case c.Stars.BounceMin > c.Stars.BounceMax:
		return fmt.Errorf("%w: stars bounce range [%v, %v]", ErrInvalid, c.Stars.BounceMin, c.Stars.BounceMax)
	case c.Bombs.SpeedX < 0:
		return fmt.Errorf("%w: bombs.speed_x %v", ErrInvalid, c.Bombs.SpeedX)
	case c.Scoring.StarPoints <= 0:
		return fmt.Errorf("%w: scoring.star_points %d", ErrInvalid, c.Scoring.StarPoints)
	}
	switch t := c.Difficulty.Progression.Type; t {
	case ProgressScore, ProgressTime, ProgressRounds, ProgressNone, "":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalid, t)
	}
	for i, p := range c.Platforms {
		if p.Scale <= 0 {
			return fmt.Errorf("%w: platforms[%d].scale %v", ErrInvalid, i, p.Scale)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown or empty names return "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
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
