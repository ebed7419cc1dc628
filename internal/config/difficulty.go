package config

import "math"

// DifficultyManager derives the scroll speed from the score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the speed curve is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.SpeedStep > 0
}

// Level returns how many speed steps the score has earned, before capping.
func (d *DifficultyManager) Level(score int) int {
	if !d.IsEnabled() || d.cfg.SpeedInterval <= 0 || score <= 0 {
		return 0
	}
	return score / d.cfg.SpeedInterval
}

// Speed returns the scroll speed for the given score.
// The curve is a monotonic step function capped at MaxSpeed.
func (d *DifficultyManager) Speed(score int) float64 {
	speed := d.cfg.BaseSpeed + float64(d.Level(score))*d.cfg.SpeedStep
	if d.cfg.MaxSpeed > 0 {
		speed = math.Min(speed, d.cfg.MaxSpeed)
	}
	return speed
}

// MaxSpeed returns the cap of the speed curve.
func (d *DifficultyManager) MaxSpeed() float64 {
	if d.cfg.MaxSpeed > 0 {
		return d.cfg.MaxSpeed
	}
	return d.cfg.BaseSpeed
}
