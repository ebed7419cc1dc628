package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	flagSimDuration  time.Duration
	flagSimJumpEvery time.Duration
	flagSimAutopilot bool
	flagSimLives     int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation and print its events",
	Long: `Run the simulation without a terminal UI. Frames advance at --fps
with no real waiting, so a one minute run finishes instantly. Every
event is printed with its simulated time, followed by the final state.

The same --seed and flags always produce the same output.

Examples:
  runner sim --seed 42
  runner sim --seed 42 --duration 2m --autopilot
  runner sim --jump-every 700ms --lives 3`,
	Run: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 30*time.Second, "Simulated time to run for")
	simCmd.Flags().DurationVar(&flagSimJumpEvery, "jump-every", 0, "Press jump at this interval (0 = never)")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Jump hazards and duck flyers automatically")
	simCmd.Flags().IntVar(&flagSimLives, "lives", 0, "Override starting lives (0 = config)")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simOptions drives a headless run.
type simOptions struct {
	Duration  time.Duration // Stop after this much simulated time
	Frame     time.Duration // Host frame length handed to Tick
	JumpEvery time.Duration // Periodic jump presses, 0 disables
	Autopilot bool
}

// simResult is what a headless run leaves behind.
type simResult struct {
	Final   runner.Snapshot
	Events  []core.Event
	Elapsed time.Duration
}

// simulate runs e until the duration passes or the game ends. onEvent, if
// set, sees every event with the simulated time of the frame that delivered it.
func simulate(e *runner.Engine, opts simOptions, onEvent func(at time.Duration, ev core.Event)) simResult {
	if opts.Frame <= 0 {
		opts.Frame = time.Second / 60
	}

	var res simResult
	var now time.Duration
	cancel := e.Subscribe(func(ev core.Event) {
		res.Events = append(res.Events, ev)
		if onEvent != nil {
			onEvent(now, ev)
		}
	})
	defer cancel()

	lastJump := -opts.JumpEvery
	for now < opts.Duration && !e.GameOver() {
		if opts.JumpEvery > 0 && now-lastJump >= opts.JumpEvery {
			e.OnJumpIntent()
			lastJump = now
		}
		if opts.Autopilot {
			steer(e, e.Snapshot())
		}

		now += opts.Frame
		e.Tick(opts.Frame)
	}

	res.Final = e.Snapshot()
	res.Elapsed = now
	return res
}

// steer is a simple reflex player: jump hazards that are about to arrive,
// duck under flyers, stand up otherwise.
func steer(e *runner.Engine, s runner.Snapshot) {
	duck := false
	for _, o := range s.Obstacles {
		gap := o.Hitbox.X - s.Player.Right()
		if o.Hitbox.Right() <= s.Player.X {
			continue // already behind
		}
		switch o.Kind {
		case runner.Hazard:
			if gap >= 0 && gap <= 4*s.Speed {
				e.OnDuckIntent(false)
				e.OnJumpIntent()
			}
		case runner.Flyer:
			if gap <= 8*s.Speed && !s.Airborne {
				duck = true
			}
		}
	}
	if duck != s.Ducking {
		e.OnDuckIntent(duck)
	}
}

func runSim(_ *cobra.Command, _ []string) {
	logger := stderrLogger("runner-sim")

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyRunnerPreset(&cfg, config.ParsePreset(flagDifficulty))
	}
	if flagSimLives > 0 {
		cfg.Player.Lives = flagSimLives
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}

	e := runner.New(cfg, seed, runner.WithLogger(logger))
	res := simulate(e, simOptions{
		Duration:  flagSimDuration,
		Frame:     time.Second / time.Duration(fps),
		JumpEvery: flagSimJumpEvery,
		Autopilot: flagSimAutopilot,
	}, func(at time.Duration, ev core.Event) {
		printEvent(os.Stdout, at, ev)
	})

	fmt.Println()
	printSummary(os.Stdout, seed, res)
}

func printEvent(w io.Writer, at time.Duration, ev core.Event) {
	fmt.Fprintf(w, "%9.3fs  %s\n", at.Seconds(), ev)
}

func printSummary(w io.Writer, seed int64, res simResult) {
	s := res.Final
	fmt.Fprintf(w, "seed:      %d\n", seed)
	fmt.Fprintf(w, "simulated: %s (%d steps)\n", res.Elapsed.Round(time.Millisecond), s.Steps)
	fmt.Fprintf(w, "score:     %d\n", s.Score)
	fmt.Fprintf(w, "lives:     %d\n", s.Lives)
	fmt.Fprintf(w, "speed:     %.1f\n", s.Speed)
	fmt.Fprintf(w, "obstacles: %d on track\n", len(s.Obstacles))
	fmt.Fprintf(w, "game over: %t\n", s.GameOver)
}
