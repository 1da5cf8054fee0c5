package config

import "math"

// Progression types.
const (
	ProgressScore  = "score"  // max_at is a score
	ProgressTime   = "time"   // max_at is a tick count
	ProgressRounds = "rounds" // max_at is a number of cleared star waves
	ProgressNone   = "none"
)

// Progress is how far a run has come.
type Progress struct {
	Score  int
	Ticks  int
	Rounds int // star waves cleared
}

// DifficultyManager turns run progress into a difficulty level and scales
// bomb speed with it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// Progressing reports whether the level moves with the run.
func (d *DifficultyManager) Progressing() bool {
	switch d.cfg.Progression.Type {
	case ProgressScore, ProgressTime, ProgressRounds:
		return d.cfg.Enabled
	}
	return false
}

// Level returns the difficulty level in [0, 1]. Without progression it stays
// at the initial level; otherwise it moves linearly from there to 1 as the
// run reaches max_at.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.Progressing() {
		return d.cfg.InitialLevel
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = p.Score
	case ProgressTime:
		done = p.Ticks
	case ProgressRounds:
		done = p.Rounds
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	progress := clampF(float64(done)/maxAt, 0, 1)
	return d.cfg.InitialLevel + progress*(1-d.cfg.InitialLevel)
}

// Speed scales baseSpeed from base at level 0 to base*(1+speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(baseSpeed float64, p Progress) float64 {
	return baseSpeed * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
