package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

func countEvents(events []core.Event, typ core.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func TestSimulateDeterministic(t *testing.T) {
	opts := simOptions{Duration: 20 * time.Second, JumpEvery: 700 * time.Millisecond}

	a := simulate(runner.New(config.DefaultRunnerConfig(), 42), opts, nil)
	b := simulate(runner.New(config.DefaultRunnerConfig(), 42), opts, nil)

	if !slices.Equal(a.Events, b.Events) {
		t.Error("same seed and inputs produced different events")
	}
	if a.Final.Score != b.Final.Score || a.Elapsed != b.Elapsed {
		t.Errorf("final score %d/%d elapsed %v/%v differ", a.Final.Score, b.Final.Score, a.Elapsed, b.Elapsed)
	}
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	res := simulate(runner.New(config.DefaultRunnerConfig(), 1), simOptions{Duration: time.Minute}, nil)

	if !res.Final.GameOver {
		t.Fatal("an idle player should lose within a minute")
	}
	if res.Elapsed >= time.Minute {
		t.Errorf("Elapsed = %v, expected the run to stop early", res.Elapsed)
	}
	last := res.Events[len(res.Events)-1]
	if last.Type != core.EventGameOver || last.Value != res.Final.Score {
		t.Errorf("last event = %v, expected GameOver(%d)", last, res.Final.Score)
	}
}

func TestSimulateDuration(t *testing.T) {
	frame := time.Second / 60
	res := simulate(runner.New(config.DefaultRunnerConfig(), 3), simOptions{Duration: 500 * time.Millisecond, Frame: frame}, nil)

	if res.Elapsed < 500*time.Millisecond || res.Elapsed >= 500*time.Millisecond+frame {
		t.Errorf("Elapsed = %v, expected within one frame of 500ms", res.Elapsed)
	}
	if res.Final.GameOver {
		t.Error("nothing reaches the player in half a second")
	}
	if res.Final.Score <= 0 {
		t.Errorf("Score = %d, expected passive score", res.Final.Score)
	}
}

func TestSimulateJumpEvery(t *testing.T) {
	var stamps []time.Duration
	res := simulate(runner.New(config.DefaultRunnerConfig(), 5), simOptions{
		Duration:  900 * time.Millisecond,
		JumpEvery: time.Second,
	}, func(at time.Duration, ev core.Event) {
		if ev.Type == core.EventJumpStarted {
			stamps = append(stamps, at)
		}
	})

	if got := countEvents(res.Events, core.EventJumpStarted); got != 1 {
		t.Fatalf("JumpStarted count = %d, expected 1", got)
	}
	if len(stamps) != 1 || stamps[0] != time.Second/60 {
		t.Errorf("jump stamps = %v, expected one at the first frame", stamps)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, 9, simResult{
		Final:   runner.Snapshot{Score: 120, Lives: 0, Speed: 6.5, GameOver: true, Steps: 600},
		Elapsed: 10 * time.Second,
	})

	out := buf.String()
	for _, want := range []string{"seed:      9", "score:     120", "speed:     6.5", "game over: true", "(600 steps)"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr, expected string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"nohost", "nohost"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.expected {
			t.Errorf("portOf(%q) = %q, expected %q", tt.addr, got, tt.expected)
		}
	}
}
