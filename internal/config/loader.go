package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial YAML only overrides what it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if cfg, err := ParseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseRunner decodes YAML over the built-in defaults and validates the result.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate reports every setting the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield: size must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	check(c.Physics.StepMS > 0, "physics.step_ms must be positive, got %v", c.Physics.StepMS)
	check(c.Physics.MaxFrameMS >= c.Physics.StepMS, "physics.max_frame_ms must be at least one step, got %v", c.Physics.MaxFrameMS)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpVelocity < 0, "physics.jump_velocity must be negative (upward), got %v", c.Physics.JumpVelocity)
	check(c.Physics.MaxJumpHeight >= 0, "physics.max_jump_height must not be negative, got %v", c.Physics.MaxJumpHeight)
	check(c.Player.Lives > 0, "player.lives must be positive, got %d", c.Player.Lives)
	check(c.Player.Standing.Width > 0 && c.Player.Standing.Height > 0, "player.standing: size must be positive")
	check(c.Player.Ducking.Width > 0 && c.Player.Ducking.Height > 0, "player.ducking: size must be positive")
	check(c.Obstacles.Extent > 0, "obstacles.extent must be positive, got %v", c.Obstacles.Extent)
	for name, s := range map[string]Shape{"hazard": c.Obstacles.Hazard, "flyer": c.Obstacles.Flyer, "bonus": c.Obstacles.Bonus} {
		check(s.Width > 0 && s.Height > 0, "obstacles.%s: size must be positive", name)
	}
	check(c.Spawn.IntervalMS > 0, "spawn.interval_ms must be positive, got %v", c.Spawn.IntervalMS)
	check(c.Spawn.HazardWeight >= 0 && c.Spawn.FlyerWeight >= 0 && c.Spawn.BonusWeight >= 0, "spawn: weights must not be negative")
	check(c.Spawn.HazardWeight+c.Spawn.FlyerWeight+c.Spawn.BonusWeight > 0, "spawn: weights must not all be zero")
	check(c.Spawn.ClusterChance >= 0 && c.Spawn.ClusterChance <= 1, "spawn.cluster_chance must be within [0, 1], got %v", c.Spawn.ClusterChance)
	check(c.Spawn.ClusterMin >= 1 && c.Spawn.ClusterMax >= c.Spawn.ClusterMin, "spawn: cluster size range %d..%d is invalid", c.Spawn.ClusterMin, c.Spawn.ClusterMax)
	check(c.Score.IntervalMS > 0, "score.interval_ms must be positive, got %v", c.Score.IntervalMS)
	check(c.Score.BonusPoints >= 0, "score.bonus_points must not be negative, got %d", c.Score.BonusPoints)
	check(c.Difficulty.BaseSpeed > 0, "difficulty.base_speed must be positive, got %v", c.Difficulty.BaseSpeed)
	check(c.Difficulty.MaxSpeed >= c.Difficulty.BaseSpeed, "difficulty.max_speed must be at least base_speed, got %v", c.Difficulty.MaxSpeed)
	check(c.Difficulty.SpeedInterval > 0, "difficulty.speed_interval must be positive, got %d", c.Difficulty.SpeedInterval)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = 5
		cfg.Difficulty.MaxSpeed = 8
		cfg.Player.Lives = 3
		cfg.Spawn.ClusterChance = 0
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = 7
		cfg.Difficulty.MaxSpeed = 12
		cfg.Spawn.IntervalMS = 800
		cfg.Spawn.ClusterChance = 0.3
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
