package runner

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is a single active obstacle on the playfield.
type Obstacle struct {
	ID   uint64  // Unique within a session, never reused
	Kind Kind    // Hazard, Flyer or Bonus
	X    float64 // Horizontal position (left edge of the spawn slot)
}

// obstacleSet holds active obstacles keyed by id, iterated in spawn order.
type obstacleSet struct {
	m *orderedmap.OrderedMap[uint64, *Obstacle]
}

func newObstacleSet() obstacleSet {
	return obstacleSet{m: orderedmap.NewOrderedMap[uint64, *Obstacle]()}
}

func (s obstacleSet) add(o *Obstacle) {
	s.m.Set(o.ID, o)
}

func (s obstacleSet) get(id uint64) (*Obstacle, bool) {
	return s.m.Get(id)
}

func (s obstacleSet) remove(id uint64) bool {
	return s.m.Delete(id)
}

func (s obstacleSet) len() int {
	return s.m.Len()
}

// each calls fn for every obstacle in spawn order.
// fn must not add or remove obstacles.
func (s obstacleSet) each(fn func(o *Obstacle)) {
	for el := s.m.Front(); el != nil; el = el.Next() {
		fn(el.Value)
	}
}

// removeIf deletes every obstacle matching pred and returns their ids.
func (s obstacleSet) removeIf(pred func(o *Obstacle) bool) []uint64 {
	var ids []uint64
	s.each(func(o *Obstacle) {
		if pred(o) {
			ids = append(ids, o.ID)
		}
	})
	for _, id := range ids {
		s.m.Delete(id)
	}
	return ids
}

// clear drops every obstacle.
func (s *obstacleSet) clear() {
	s.m = orderedmap.NewOrderedMap[uint64, *Obstacle]()
}

// ObstacleView is a read-only copy of an obstacle handed to collaborators.
type ObstacleView struct {
	ID     uint64
	Kind   Kind
	X      float64
	Hitbox core.Box
}
