package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Tracker owns score, lives and the speed curve.
type Tracker struct {
	Score int
	Lives int
	Speed float64

	startLives     int
	milestoneEvery int
	difficulty     *config.DifficultyManager
}

// NewTracker creates a tracker with the configured starting lives.
func NewTracker(lives int, score config.Score, diff *config.DifficultyManager) *Tracker {
	t := &Tracker{
		startLives:     lives,
		milestoneEvery: score.MilestoneEvery,
		difficulty:     diff,
	}
	t.Reset()
	return t
}

// Reset restores the session start values.
func (t *Tracker) Reset() {
	t.Score = 0
	t.Lives = t.startLives
	t.Speed = t.difficulty.Speed(0)
}

// Add increases the score and recomputes speed. It returns every
// milestone crossed by the increase, lowest first.
func (t *Tracker) Add(points int) []int {
	if points <= 0 {
		return nil
	}
	old := t.Score
	t.Score += points
	t.Speed = t.difficulty.Speed(t.Score)

	if t.milestoneEvery <= 0 {
		return nil
	}
	var crossed []int
	for m := (old/t.milestoneEvery + 1) * t.milestoneEvery; m <= t.Score; m += t.milestoneEvery {
		crossed = append(crossed, m)
	}
	return crossed
}

// LoseLife removes one life and reports whether none remain.
func (t *Tracker) LoseLife() bool {
	if t.Lives > 0 {
		t.Lives--
	}
	return t.Lives == 0
}
