package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// quietConfig returns the default config with spawning and passive
// scoring disabled so tests place obstacles by hand.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.IntervalMS = 0
	cfg.Score.IntervalMS = 0
	return cfg
}

func newQuietEngine(mutate func(*config.RunnerConfig)) *Engine {
	cfg := quietConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, 1)
}

// place adds an obstacle that will sit at x after the next move.
func place(e *Engine, kind Kind, x float64) *Obstacle {
	w := e.world
	w.nextID++
	o := &Obstacle{ID: w.nextID, Kind: kind, X: x + w.tracker.Speed}
	w.obstacles.add(o)
	return o
}

// stepOnce runs exactly one fixed step.
func stepOnce(e *Engine) []core.Event {
	return e.Tick(e.clock.Step())
}

func eventTypes(events []core.Event) []core.EventType {
	types := make([]core.EventType, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	return types
}

func TestHazardHitEndsGame(t *testing.T) {
	e := newQuietEngine(nil)
	place(e, Hazard, 100)

	events := stepOnce(e)

	s := e.Snapshot()
	if s.Lives != 0 || !s.GameOver {
		t.Fatalf("Lives=%d GameOver=%v, expected 0 true", s.Lives, s.GameOver)
	}
	if len(s.Obstacles) != 0 {
		t.Errorf("hit hazard still active: %+v", s.Obstacles)
	}

	want := []core.Event{
		{Type: core.EventObstacleHit, Detail: "hazard"},
		{Type: core.EventGameOver, Value: 0},
	}
	if len(events) != len(want) {
		t.Fatalf("events = %v, expected %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %v, expected %v", i, events[i], want[i])
		}
	}
}

func TestBonusCollected(t *testing.T) {
	e := newQuietEngine(nil)
	place(e, Bonus, 94)

	events := stepOnce(e)

	s := e.Snapshot()
	if s.Score != 20 {
		t.Errorf("Score = %d, expected 20", s.Score)
	}
	if s.Lives != 1 || s.GameOver {
		t.Errorf("bonus cost a life: Lives=%d GameOver=%v", s.Lives, s.GameOver)
	}
	if len(s.Obstacles) != 0 {
		t.Errorf("collected bonus still active")
	}
	if len(events) != 1 || events[0] != (core.Event{Type: core.EventBonusCollected, Value: 20}) {
		t.Errorf("events = %v, expected [BonusCollected(20)]", events)
	}
}

func TestFlyerHitsStandingBody(t *testing.T) {
	e := newQuietEngine(func(c *config.RunnerConfig) { c.Player.Lives = 2 })
	place(e, Flyer, 100)

	events := stepOnce(e)

	if got := e.Snapshot().Lives; got != 1 {
		t.Errorf("Lives = %d, expected 1", got)
	}
	if len(events) != 1 || events[0].Type != core.EventObstacleHit || events[0].Detail != "flyer" {
		t.Errorf("events = %v, expected [ObstacleHit(flyer)]", events)
	}
}

func TestFlyerPassesOverDuckingBody(t *testing.T) {
	e := newQuietEngine(nil)
	e.OnDuckIntent(true)
	place(e, Flyer, 100)

	var all []core.Event
	for i := 0; i < 60; i++ {
		all = append(all, stepOnce(e)...)
	}

	s := e.Snapshot()
	if s.Lives != 1 || s.GameOver {
		t.Errorf("ducking body lost a life: Lives=%d", s.Lives)
	}
	if len(all) != 0 {
		t.Errorf("events = %v, expected none", all)
	}
	if len(s.Obstacles) != 0 {
		t.Errorf("flyer should have been culled, got %+v", s.Obstacles)
	}
}

func TestFlyerTouchingDuckingBodyIsHarmless(t *testing.T) {
	// Low flyer that overlaps even the ducking hitbox
	e := newQuietEngine(func(c *config.RunnerConfig) {
		c.Obstacles.Flyer.Y = 170
	})
	e.OnDuckIntent(true)
	o := place(e, Flyer, 100)

	events := stepOnce(e)

	if _, ok := e.world.obstacles.get(o.ID); ok {
		t.Error("flyer should be removed after touching the ducking body")
	}
	if _, ok := e.world.resolved[o.ID]; !ok {
		t.Error("flyer should be marked resolved")
	}
	if got := e.Snapshot().Lives; got != 1 {
		t.Errorf("Lives = %d, expected 1", got)
	}
	if len(events) != 0 {
		t.Errorf("events = %v, expected none", events)
	}
}

func TestObstacleResolvedAtMostOnce(t *testing.T) {
	e := newQuietEngine(func(c *config.RunnerConfig) { c.Player.Lives = 3 })
	o := place(e, Hazard, 100)
	stepOnce(e)

	// Same id reappearing must not hit again
	again := &Obstacle{ID: o.ID, Kind: Hazard, X: 100 + e.world.tracker.Speed}
	e.world.obstacles.add(again)

	var hits int
	for i := 0; i < 10; i++ {
		for _, ev := range stepOnce(e) {
			if ev.Type == core.EventObstacleHit {
				hits++
			}
		}
	}
	if hits != 0 {
		t.Errorf("resolved obstacle hit %d more times", hits)
	}
	if got := e.Snapshot().Lives; got != 2 {
		t.Errorf("Lives = %d, expected 2", got)
	}
}

func TestCulling(t *testing.T) {
	tests := []struct {
		name  string
		x     float64 // position after the move
		alive bool
	}{
		{"well past the edge", -57, false},
		{"exactly at threshold", -50, false},
		{"just inside", -49, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newQuietEngine(nil)
			o := place(e, Hazard, tt.x)
			stepOnce(e)
			if _, ok := e.world.obstacles.get(o.ID); ok != tt.alive {
				t.Errorf("alive = %v, expected %v", ok, tt.alive)
			}
		})
	}
}

func TestObstacleAtMinus51Removed(t *testing.T) {
	e := newQuietEngine(nil)
	e.world.nextID++
	e.world.obstacles.add(&Obstacle{ID: e.world.nextID, Kind: Hazard, X: -51})

	stepOnce(e)

	if n := len(e.Snapshot().Obstacles); n != 0 {
		t.Errorf("obstacles = %d, expected 0", n)
	}
}

func TestObstaclesMoveBySpeed(t *testing.T) {
	e := newQuietEngine(nil)
	e.world.nextID++
	e.world.obstacles.add(&Obstacle{ID: e.world.nextID, Kind: Hazard, X: 700})

	stepOnce(e)

	s := e.Snapshot()
	if len(s.Obstacles) != 1 || s.Obstacles[0].X != 694 {
		t.Errorf("obstacles = %+v, expected one at X=694", s.Obstacles)
	}
}

func TestJumpClearsHazard(t *testing.T) {
	e := newQuietEngine(nil)
	e.OnJumpIntent()
	// Reaches the body while the jump is well under way
	place(e, Hazard, 100+6*8)

	for i := 0; i < 120; i++ {
		stepOnce(e)
	}
	if e.GameOver() {
		t.Fatal("jumping body should clear the hazard")
	}
}

func TestSpawnUsesTimer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Score.IntervalMS = 0
	e := New(cfg, 42)

	// Just under one second of steps: nothing yet
	for i := 0; i < 59; i++ {
		stepOnce(e)
	}
	if n := len(e.Snapshot().Obstacles); n != 0 {
		t.Fatalf("spawned %d obstacles before the interval", n)
	}
	for i := 0; i < 3; i++ {
		stepOnce(e)
	}
	s := e.Snapshot()
	if len(s.Obstacles) == 0 {
		t.Fatal("no obstacle after one second")
	}
	if s.Obstacles[0].ID != 1 {
		t.Errorf("first id = %d, expected 1", s.Obstacles[0].ID)
	}
}

func TestPassiveScoreAndMilestone(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.IntervalMS = 0
	e := New(cfg, 1)

	var milestones []int
	e.Subscribe(func(ev core.Event) {
		if ev.Type == core.EventMilestone {
			milestones = append(milestones, ev.Value)
		}
	})

	// 10 seconds of simulated time at 100ms per point
	for i := 0; i < 601; i++ {
		stepOnce(e)
	}

	s := e.Snapshot()
	if s.Score != 100 {
		t.Errorf("Score = %d, expected 100", s.Score)
	}
	if len(milestones) != 1 || milestones[0] != 100 {
		t.Errorf("milestones = %v, expected [100]", milestones)
	}
	if s.Speed != 6.5 {
		t.Errorf("Speed = %v, expected 6.5", s.Speed)
	}
}

func TestAnimationFrames(t *testing.T) {
	e := newQuietEngine(nil)
	seen := map[int]bool{}
	for i := 0; i < 60; i++ {
		stepOnce(e)
		seen[e.Snapshot().AnimFrame] = true
	}
	for f := 0; f < 3; f++ {
		if !seen[f] {
			t.Errorf("animation frame %d never shown", f)
		}
	}
	if len(seen) != 3 {
		t.Errorf("saw %d frames, expected 3", len(seen))
	}
}

func TestNoInputAfterGameOver(t *testing.T) {
	e := newQuietEngine(nil)
	place(e, Hazard, 100)
	stepOnce(e)

	e.OnJumpIntent()
	e.OnDuckIntent(true)
	events := stepOnce(e)

	s := e.Snapshot()
	if s.Airborne || s.Ducking {
		t.Errorf("input accepted after game over: Airborne=%v Ducking=%v", s.Airborne, s.Ducking)
	}
	if len(events) != 0 {
		t.Errorf("events after game over = %v", events)
	}
}
