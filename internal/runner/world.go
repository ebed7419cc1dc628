package runner

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// World is the authoritative simulation state, mutated in place once per step.
type World struct {
	geo       geometry
	body      Body
	obstacles obstacleSet
	resolved  map[uint64]struct{} // ids that already produced their effect
	spawner   *Spawner
	tracker   *Tracker
	nextID    uint64

	stepLen    time.Duration
	spawnTimer *Timer
	scoreTimer *Timer
	animTimer  *Timer
	animFrame  int
	animFrames int

	bonusPoints int
	gameOver    bool

	pending []core.Event // emitted during steps, drained by the engine
	logger  *log.Logger
}

func newWorld(cfg config.RunnerConfig, seed int64, logger *log.Logger) *World {
	w := &World{
		geo:         newGeometry(cfg),
		body:        newBody(cfg.Physics),
		obstacles:   newObstacleSet(),
		resolved:    make(map[uint64]struct{}),
		spawner:     NewSpawner(cfg.Spawn, cfg.Playfield.Width, seed),
		tracker:     NewTracker(cfg.Player.Lives, cfg.Score, config.NewDifficultyManager(cfg.Difficulty)),
		stepLen:     msDuration(cfg.Physics.StepMS),
		spawnTimer:  NewTimer(msDuration(cfg.Spawn.IntervalMS)),
		scoreTimer:  NewTimer(msDuration(cfg.Score.IntervalMS)),
		animTimer:   NewTimer(msDuration(cfg.Player.AnimFrameMS)),
		animFrames:  cfg.Player.AnimFrames,
		bonusPoints: cfg.Score.BonusPoints,
		logger:      logger,
	}
	return w
}

// reset restores the whole world to its session start state in one go.
func (w *World) reset(seed int64) {
	w.body.reset()
	w.obstacles.clear()
	w.resolved = make(map[uint64]struct{})
	w.spawner.Reset(seed)
	w.tracker.Reset()
	w.nextID = 0
	w.spawnTimer.Reset()
	w.scoreTimer.Reset()
	w.animTimer.Reset()
	w.animFrame = 0
	w.gameOver = false
	w.pending = w.pending[:0]
}

// step runs one fixed physics step.
func (w *World) step() {
	if w.gameOver {
		return
	}

	if w.body.integrate() {
		w.emit(core.Event{Type: core.EventLanded})
	}

	for n := w.spawnTimer.Advance(w.stepLen); n > 0; n-- {
		w.spawn()
	}

	w.moveObstacles()
	w.collide()
	w.cull()
	if w.gameOver {
		return
	}

	for n := w.scoreTimer.Advance(w.stepLen); n > 0; n-- {
		w.award(1)
	}

	if w.animFrames > 0 {
		for n := w.animTimer.Advance(w.stepLen); n > 0; n-- {
			w.animFrame = (w.animFrame + 1) % w.animFrames
		}
	}
}

// spawn adds the obstacles of one spawn event.
func (w *World) spawn() {
	for _, slot := range w.spawner.Draw() {
		w.nextID++
		w.obstacles.add(&Obstacle{ID: w.nextID, Kind: slot.Kind, X: slot.X})
		w.logger.Debug("spawn", "id", w.nextID, "kind", slot.Kind, "x", slot.X)
	}
}

func (w *World) moveObstacles() {
	speed := w.tracker.Speed
	w.obstacles.each(func(o *Obstacle) {
		o.X -= speed
	})
}

// collide resolves every unresolved obstacle touching the body.
// Each obstacle produces its effect at most once.
func (w *World) collide() {
	hitbox := w.bodyHitbox()
	var touched []*Obstacle
	w.obstacles.each(func(o *Obstacle) {
		if _, done := w.resolved[o.ID]; done {
			return
		}
		if hitbox.Overlaps(w.geo.obstacleBox(o.Kind, o.X)) {
			touched = append(touched, o)
		}
	})

	for _, o := range touched {
		if w.gameOver {
			break
		}
		w.resolve(o)
	}
}

// resolve applies the effect of a first contact and removes the obstacle.
func (w *World) resolve(o *Obstacle) {
	w.resolved[o.ID] = struct{}{}
	w.obstacles.remove(o.ID)

	switch {
	case o.Kind == Bonus:
		w.emit(core.Event{Type: core.EventBonusCollected, Value: w.bonusPoints})
		w.award(w.bonusPoints)
	case o.Kind == Flyer && w.body.Ducking:
		// passed underneath
	case o.Kind.Damaging():
		w.emit(core.Event{Type: core.EventObstacleHit, Detail: o.Kind.String()})
		if w.tracker.LoseLife() {
			w.finish()
		}
	}
}

func (w *World) cull() {
	w.obstacles.removeIf(func(o *Obstacle) bool {
		return w.geo.offscreen(o.X)
	})
}

// award adds points and emits a Milestone for each multiple crossed.
func (w *World) award(points int) {
	for _, m := range w.tracker.Add(points) {
		w.emit(core.Event{Type: core.EventMilestone, Value: m})
	}
}

// finish enters Game Over and stops every timer.
func (w *World) finish() {
	w.gameOver = true
	w.body.SetDuck(false)
	w.spawnTimer.Stop()
	w.scoreTimer.Stop()
	w.animTimer.Stop()
	w.emit(core.Event{Type: core.EventGameOver, Value: w.tracker.Score})
	w.logger.Info("game over", "score", w.tracker.Score)
}

func (w *World) jump() bool {
	if w.gameOver || !w.body.Jump() {
		return false
	}
	w.emit(core.Event{Type: core.EventJumpStarted})
	return true
}

func (w *World) duck(active bool) bool {
	if active && w.gameOver {
		return false
	}
	return w.body.SetDuck(active)
}

func (w *World) bodyHitbox() core.Box {
	return w.geo.bodyBox(w.body.Y, w.body.Ducking)
}

func (w *World) emit(e core.Event) {
	w.pending = append(w.pending, e)
}

// drain returns and clears the pending events.
func (w *World) drain() []core.Event {
	if len(w.pending) == 0 {
		return nil
	}
	out := make([]core.Event, len(w.pending))
	copy(out, w.pending)
	w.pending = w.pending[:0]
	return out
}
