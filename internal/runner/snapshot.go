package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Snapshot is a read-only copy of the simulation state for presentation.
type Snapshot struct {
	Width  float64 // Playfield size
	Height float64

	Player    core.Box // Current body hitbox
	Y         float64  // Body height above ground, 0 or negative
	Ducking   bool
	Airborne  bool
	AnimFrame int

	Obstacles []ObstacleView // Spawn order

	Score    int
	Lives    int
	Speed    float64
	Paused   bool
	GameOver bool
	Steps    uint64 // Fixed steps run this session
}

// Snapshot copies the current state. The result shares nothing with the engine.
func (e *Engine) Snapshot() Snapshot {
	w := e.world
	s := Snapshot{
		Width:     e.cfg.Playfield.Width,
		Height:    e.cfg.Playfield.Height,
		Player:    w.bodyHitbox(),
		Y:         w.body.Y,
		Ducking:   w.body.Ducking,
		Airborne:  w.body.Airborne,
		AnimFrame: w.animFrame,
		Obstacles: make([]ObstacleView, 0, w.obstacles.len()),
		Score:     w.tracker.Score,
		Lives:     w.tracker.Lives,
		Speed:     w.tracker.Speed,
		Paused:    e.clock.Paused(),
		GameOver:  w.gameOver,
		Steps:     e.clock.Steps(),
	}
	w.obstacles.each(func(o *Obstacle) {
		s.Obstacles = append(s.Obstacles, ObstacleView{
			ID:     o.ID,
			Kind:   o.Kind,
			X:      o.X,
			Hitbox: w.geo.obstacleBox(o.Kind, o.X),
		})
	})
	return s
}

// State converts the snapshot to the host-facing game state.
func (s Snapshot) State() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Lives:    s.Lives,
		GameOver: s.GameOver,
		Paused:   s.Paused,
	}
}
