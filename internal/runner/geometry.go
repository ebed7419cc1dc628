package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Kind is the obstacle category.
type Kind int

const (
	Hazard Kind = iota // ground obstacle, jump over it
	Flyer              // airborne obstacle, duck under it
	Bonus              // collectible
	kindCount
)

// String returns the lowercase kind name used in events and logs.
func (k Kind) String() string {
	switch k {
	case Hazard:
		return "hazard"
	case Flyer:
		return "flyer"
	case Bonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Damaging reports whether touching this kind costs a life.
func (k Kind) Damaging() bool {
	return k == Hazard || k == Flyer
}

// geometry is the static collision table. Every hitbox in the
// simulation is derived from it; nothing else holds offsets.
type geometry struct {
	kinds    [kindCount]config.Shape
	extent   float64
	standing config.Shape
	ducking  config.Shape
	playerX  float64
	groundY  float64
}

func newGeometry(cfg config.RunnerConfig) geometry {
	g := geometry{
		extent:   cfg.Obstacles.Extent,
		standing: cfg.Player.Standing,
		ducking:  cfg.Player.Ducking,
		playerX:  cfg.Player.X,
		groundY:  cfg.Playfield.Height,
	}
	g.kinds[Hazard] = cfg.Obstacles.Hazard
	g.kinds[Flyer] = cfg.Obstacles.Flyer
	g.kinds[Bonus] = cfg.Obstacles.Bonus
	return g
}

// obstacleBox returns the hitbox of an obstacle of the given kind at x.
func (g geometry) obstacleBox(kind Kind, x float64) core.Box {
	s := g.kinds[kind]
	return core.NewBox(x+s.OffsetX, s.Y, s.Width, s.Height)
}

// bodyBox returns the player hitbox standing on the ground line, lifted by y (y <= 0).
func (g geometry) bodyBox(y float64, ducking bool) core.Box {
	s := g.standing
	if ducking {
		s = g.ducking
	}
	return core.NewBox(g.playerX+s.OffsetX, g.groundY-s.Height+y, s.Width, s.Height)
}

// offscreen reports whether an obstacle at x has fully left the playfield.
func (g geometry) offscreen(x float64) bool {
	return x+g.extent <= 0
}
