package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: runner).

Controls:
  Space/W/Up  - Jump
  S/Down      - Duck (hold or tap; each tap ducks briefly)
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Three lives, slower start
  normal - Config as written
  hard   - Faster start, higher top speed, denser obstacles
  fixed  - No speed-up, stays at the base speed

Examples:
  runner play
  runner play runner_marathon
  runner play --difficulty hard --sound=false
  runner play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
		c.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
		c.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with your scores")
	}
}

func defaultPlayer() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return storage.AnonymousPlayer
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureModes hands the shared flags to the runner modes before creation.
func configureModes(logger *log.Logger) {
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	runner.SetLogger(logger)
}

// openStore opens the scores database, continuing without one on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		return nil
	}
	return store
}

// startAudio opens the speaker when sound is on. Failure only disables sound.
func startAudio(logger *log.Logger) *audio.Manager {
	am := audio.NewManager(flagSound, flagVolume, logger)
	//nolint:errcheck // Init logs and disables audio on failure
	am.Init()
	return am
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "runner"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available modes.")
		os.Exit(1)
	}

	logger, closer := fileLogger()
	defer closer.Close()

	configureModes(logger)
	cfg := terminalConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	am := startAudio(logger)

	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Player: flagPlayer,
		Audio:  am,
		Logger: logger,
	})

	// Release resources before potential exit
	am.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closer.Close()
		os.Exit(1)
	}
}
