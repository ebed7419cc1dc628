// Package runner implements the side-scrolling runner simulation:
// a fixed-step clock, the player body, obstacle spawning and collision
// resolution, and the score and speed tracker.
//
// The package has no rendering, audio or persistence dependencies.
// Hosts drive it with Tick and input intents and observe it through
// events and snapshots.
package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Engine is the public face of a simulation session.
// It is not safe for concurrent use; call it from a single goroutine.
type Engine struct {
	cfg    config.RunnerConfig
	seed   int64
	clock  *Clock
	world  *World
	logger *log.Logger

	subscribers map[int]func(core.Event)
	nextSubID   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for session and game over messages.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine for the given config and seed.
func New(cfg config.RunnerConfig, seed int64, opts ...Option) *Engine {
	e := &Engine{
		cfg:         cfg,
		seed:        seed,
		logger:      log.New(io.Discard),
		subscribers: make(map[int]func(core.Event)),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.clock = NewClock(msDuration(cfg.Physics.StepMS), msDuration(cfg.Physics.MaxFrameMS))
	e.world = newWorld(cfg, seed, e.logger)
	e.logger.Info("session start", "seed", seed, "lives", cfg.Player.Lives)
	return e
}

// Tick advances the simulation by elapsed wall time, running zero or more
// fixed steps, then delivers every event emitted since the previous Tick
// to subscribers. The same events are returned in emission order.
func (e *Engine) Tick(elapsed time.Duration) []core.Event {
	steps := e.clock.Advance(elapsed)
	for i := 0; i < steps; i++ {
		e.world.step()
		if e.world.gameOver {
			e.clock.Stop()
			break
		}
	}

	events := e.world.drain()
	e.dispatch(events)
	return events
}

// OnJumpIntent starts a jump if the body can jump.
// JumpStarted is delivered with the next Tick.
func (e *Engine) OnJumpIntent() {
	if e.clock.Paused() {
		return
	}
	e.world.jump()
}

// OnDuckIntent starts or stops ducking. Ducking only starts on the ground;
// a request made in the air is dropped, not queued.
func (e *Engine) OnDuckIntent(active bool) {
	if active && e.clock.Paused() {
		return
	}
	e.world.duck(active)
}

// OnPauseChanged suspends or resumes the simulation.
// Pausing a finished session does nothing.
func (e *Engine) OnPauseChanged(paused bool) {
	if e.world.gameOver || e.clock.Paused() == paused {
		return
	}
	e.clock.SetPaused(paused)
	e.logger.Debug("pause changed", "paused", paused)
}

// Restart resets every part of the session at once and reseeds the spawner.
// Pending undelivered events are discarded.
func (e *Engine) Restart(seed int64) {
	e.seed = seed
	e.clock.Reset()
	e.world.reset(seed)
	e.logger.Info("session start", "seed", seed, "lives", e.cfg.Player.Lives)
}

// Subscribe registers fn for every event. Subscribers run synchronously
// inside Tick and must not block. The returned function unsubscribes.
func (e *Engine) Subscribe(fn func(core.Event)) (cancel func()) {
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = fn
	return func() {
		delete(e.subscribers, id)
	}
}

func (e *Engine) dispatch(events []core.Event) {
	if len(events) == 0 || len(e.subscribers) == 0 {
		return
	}
	// deterministic order: subscription order
	for _, ev := range events {
		for id := 0; id < e.nextSubID; id++ {
			if fn, ok := e.subscribers[id]; ok {
				fn(ev)
			}
		}
	}
}

// Seed returns the seed of the current session.
func (e *Engine) Seed() int64 { return e.seed }

// Config returns the config the engine was built with.
func (e *Engine) Config() config.RunnerConfig { return e.cfg }

// Paused reports whether the simulation is suspended.
func (e *Engine) Paused() bool { return e.clock.Paused() }

// GameOver reports whether the session has ended.
func (e *Engine) GameOver() bool { return e.world.gameOver }

// Ducking reports whether the body is ducking.
func (e *Engine) Ducking() bool { return e.world.body.Ducking }

// Score returns the current score.
func (e *Engine) Score() int { return e.world.tracker.Score }
