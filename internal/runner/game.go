package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// duckHold is how long a single duck key press keeps the body ducked.
// Terminals report no key release, so key repeat refreshes the hold.
const duckHold = 450 * time.Millisecond

// Game adapts an Engine to the registry.Game interface.
type Game struct {
	id      string
	title   string
	lives   int // minimum starting lives for this mode, 0 uses config
	runtime core.RuntimeConfig
	engine  *Engine
	duckFor time.Duration // remaining duck hold
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to engines created by registered modes.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// NewGame creates the classic single-life mode.
func NewGame() *Game {
	return &Game{id: "runner", title: "Runner"}
}

// NewMarathon creates the three-life mode.
func NewMarathon() *Game {
	return &Game{id: "runner_marathon", title: "Runner Marathon", lives: 3}
}

// ID returns the mode identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Engine exposes the underlying engine, nil before the first Reset.
func (g *Game) Engine() *Engine { return g.engine }

// Reset loads config and starts a new session.
// An engine built from an identical config is restarted in place.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.duckFor = 0

	cfg := g.loadConfig()
	if g.engine != nil && g.engine.Config() == cfg {
		g.engine.Restart(runtime.Seed)
		return
	}
	g.engine = New(cfg, runtime.Seed, WithLogger(logger.With("mode", g.id)))
}

func (g *Game) loadConfig() config.RunnerConfig {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		logger.Warn("using default runner config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	if g.lives > cfg.Player.Lives {
		cfg.Player.Lives = g.lives
	}
	return cfg
}

// Step advances the game by one nominal frame of 1/TickRate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.Advance(in, time.Second/time.Duration(rate))
}

// Advance maps the frame's actions to engine intents and ticks the engine
// by the real elapsed time.
func (g *Game) Advance(in core.InputFrame, elapsed time.Duration) core.StepResult {
	e := g.engine

	if in.Has(core.ActionPause) {
		e.OnPauseChanged(!e.Paused())
	}

	if in.Has(core.ActionJump) {
		// A jump press ends the emulated duck hold
		if e.Ducking() {
			e.OnDuckIntent(false)
			g.duckFor = 0
		}
		e.OnJumpIntent()
	}

	if in.Has(core.ActionDuck) {
		e.OnDuckIntent(true)
		if e.Ducking() {
			g.duckFor = duckHold
		}
	} else if g.duckFor > 0 && !e.Paused() {
		g.duckFor -= elapsed
		if g.duckFor <= 0 {
			g.duckFor = 0
			e.OnDuckIntent(false)
		}
	}

	events := e.Tick(elapsed)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	w := g.engine.world
	return core.GameState{
		Score:    w.tracker.Score,
		Lives:    w.tracker.Lives,
		GameOver: w.gameOver,
		Paused:   g.engine.Paused(),
	}
}

// Register the modes with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return NewGame()
	})
	registry.Register("runner_marathon", func() registry.Game {
		return NewMarathon()
	})
}
