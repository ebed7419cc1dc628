package core

import "fmt"

// EventType identifies a simulation event delivered to side-effect collaborators
// (audio, analytics, persistence).
type EventType int

const (
	EventJumpStarted EventType = iota + 1
	EventLanded
	EventObstacleHit    // Detail carries the obstacle kind
	EventBonusCollected // Value carries the points awarded
	EventMilestone      // Value carries the milestone score
	EventGameOver       // Value carries the final score
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventJumpStarted:
		return "JumpStarted"
	case EventLanded:
		return "Landed"
	case EventObstacleHit:
		return "ObstacleHit"
	case EventBonusCollected:
		return "BonusCollected"
	case EventMilestone:
		return "Milestone"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a single notification emitted by the simulation.
type Event struct {
	Type   EventType
	Detail string
	Value  int
}

// String formats the event for logs, e.g. "ObstacleHit(flyer)" or "GameOver(312)".
func (e Event) String() string {
	switch e.Type {
	case EventObstacleHit:
		return fmt.Sprintf("%s(%s)", e.Type, e.Detail)
	case EventBonusCollected, EventMilestone, EventGameOver:
		return fmt.Sprintf("%s(%d)", e.Type, e.Value)
	default:
		return e.Type.String()
	}
}
