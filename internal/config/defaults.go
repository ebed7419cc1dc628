package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Playfield: Playfield{
			Width:  800,
			Height: 200,
		},
		Physics: Physics{
			StepMS:        1000.0 / 60.0,
			MaxFrameMS:    250,
			Gravity:       0.6,
			JumpVelocity:  -12,
			MaxJumpHeight: 110,
		},
		Player: Player{
			X:           100,
			Standing:    Shape{Width: 40, Height: 50},
			Ducking:     Shape{Width: 64, Height: 24},
			Lives:       1,
			AnimFrameMS: 120,
			AnimFrames:  3,
		},
		Obstacles: Obstacles{
			Extent: 50,
			Hazard: Shape{OffsetX: 5, Y: 160, Width: 30, Height: 40},
			Flyer:  Shape{OffsetX: 5, Y: 130, Width: 30, Height: 30},
			Bonus:  Shape{OffsetX: 10, Y: 165, Width: 20, Height: 20},
		},
		Spawn: Spawn{
			IntervalMS:    1000,
			HazardWeight:  70,
			FlyerWeight:   15,
			BonusWeight:   15,
			ClusterChance: 0.15,
			ClusterMin:    2,
			ClusterMax:    3,
			ClusterGap:    60,
		},
		Score: Score{
			IntervalMS:     100,
			BonusPoints:    20,
			MilestoneEvery: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			BaseSpeed:     6,
			SpeedInterval: 100,
			SpeedStep:     0.5,
			MaxSpeed:      10,
		},
	}
}

// DefaultYAML returns the embedded default runner YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
