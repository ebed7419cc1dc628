// Package config provides YAML-based runner configuration loading and
// difficulty management.
package config

// RunnerConfig contains all tunables of the runner simulation.
// Distances are playfield units (pixels of an 800x200 field by default),
// times are milliseconds of simulated time.
type RunnerConfig struct {
	Playfield  Playfield        `yaml:"playfield"`
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Spawn      Spawn            `yaml:"spawn"`
	Score      Score            `yaml:"score"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Playfield defines the simulated area. The ground line sits at Y = Height.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the fixed-step integrator.
type Physics struct {
	StepMS        float64 `yaml:"step_ms"`         // Fixed physics step
	MaxFrameMS    float64 `yaml:"max_frame_ms"`    // Elapsed time above this is dropped
	Gravity       float64 `yaml:"gravity"`         // Added to velocity each airborne step
	JumpVelocity  float64 `yaml:"jump_velocity"`   // Initial velocity, negative is up
	MaxJumpHeight float64 `yaml:"max_jump_height"` // Apex clamp, 0 disables
}

// Player defines the runner body.
type Player struct {
	X           float64 `yaml:"x"`
	Standing    Shape   `yaml:"standing"`
	Ducking     Shape   `yaml:"ducking"`
	Lives       int     `yaml:"lives"`
	AnimFrameMS float64 `yaml:"anim_frame_ms"`
	AnimFrames  int     `yaml:"anim_frames"`
}

// Shape is a hitbox relative to its owner.
// For obstacles Y is absolute; for the player it is ignored and the
// box stands on the ground line.
type Shape struct {
	OffsetX float64 `yaml:"offset_x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Obstacles holds the per-kind collision geometry.
type Obstacles struct {
	Extent float64 `yaml:"extent"` // Sprite width used for culling
	Hazard Shape   `yaml:"hazard"`
	Flyer  Shape   `yaml:"flyer"`
	Bonus  Shape   `yaml:"bonus"`
}

// Spawn defines the obstacle generator.
type Spawn struct {
	IntervalMS    float64 `yaml:"interval_ms"`
	HazardWeight  int     `yaml:"hazard_weight"`
	FlyerWeight   int     `yaml:"flyer_weight"`
	BonusWeight   int     `yaml:"bonus_weight"`
	ClusterChance float64 `yaml:"cluster_chance"` // Chance a hazard draw becomes a cluster
	ClusterMin    int     `yaml:"cluster_min"`
	ClusterMax    int     `yaml:"cluster_max"`
	ClusterGap    float64 `yaml:"cluster_gap"`
}

// Score defines passive scoring, bonuses and milestones.
type Score struct {
	IntervalMS     float64 `yaml:"interval_ms"`
	BonusPoints    int     `yaml:"bonus_points"`
	MilestoneEvery int     `yaml:"milestone_every"`
}

// DifficultyConfig defines the speed curve:
// speed = min(base + floor(score / interval) * step, max).
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"` // false keeps speed at base
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedInterval int     `yaml:"speed_interval"`
	SpeedStep     float64 `yaml:"speed_step"`
	MaxSpeed      float64 `yaml:"max_speed"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "" (config default).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
