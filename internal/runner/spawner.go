package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Slot is one obstacle produced by a spawn event.
type Slot struct {
	Kind Kind
	X    float64
}

// Spawner draws obstacle kinds from a seeded RNG.
// The same seed always yields the same sequence of spawn events.
type Spawner struct {
	rng   *rand.Rand
	cfg   config.Spawn
	width float64 // entry position, the right edge of the playfield
}

// NewSpawner creates a spawner entering obstacles at the given playfield width.
func NewSpawner(cfg config.Spawn, width float64, seed int64) *Spawner {
	s := &Spawner{cfg: cfg, width: width}
	s.Reset(seed)
	return s
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Draw produces one spawn event: a single obstacle or a Hazard cluster.
func (s *Spawner) Draw() []Slot {
	kind := s.pickKind()
	if kind != Hazard || s.cfg.ClusterChance <= 0 || s.cfg.ClusterMax < 2 {
		return []Slot{{Kind: kind, X: s.width}}
	}
	if s.rng.Float64() >= s.cfg.ClusterChance {
		return []Slot{{Kind: kind, X: s.width}}
	}

	n := s.cfg.ClusterMin
	if n < 2 {
		n = 2
	}
	if s.cfg.ClusterMax > n {
		n += s.rng.Intn(s.cfg.ClusterMax - n + 1)
	}

	slots := make([]Slot, n)
	for i := range slots {
		slots[i] = Slot{Kind: Hazard, X: s.width + float64(i)*s.cfg.ClusterGap}
	}
	return slots
}

// pickKind makes a weighted draw over the configured kind weights.
func (s *Spawner) pickKind() Kind {
	total := s.cfg.HazardWeight + s.cfg.FlyerWeight + s.cfg.BonusWeight
	if total <= 0 {
		return Hazard
	}
	r := s.rng.Intn(total)
	switch {
	case r < s.cfg.HazardWeight:
		return Hazard
	case r < s.cfg.HazardWeight+s.cfg.FlyerWeight:
		return Flyer
	default:
		return Bonus
	}
}
