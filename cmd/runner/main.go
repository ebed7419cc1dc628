// runner is a terminal side-scroller: jump and duck past obstacles for score.
//
// Usage:
//
//	runner list              - List available modes
//	runner play [mode]       - Play a mode (default: runner)
//	runner menu              - Start menu to pick modes interactively
//	runner serve             - Start SSH server for remote play
//	runner scores [mode]     - Show high scores and player bests
//	runner sim               - Run a headless simulation and print its events
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.arcade/runner.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/logging"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump and duck through an endless track in your terminal",
	Long: `Runner is a terminal side-scroller. Jump over hazards, duck under
flyers and grab bonuses while the track speeds up.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless simulation

Examples:
  runner play
  runner play runner_marathon --difficulty easy
  runner menu
  runner serve --ssh :2222
  runner sim --seed 42 --duration 30s`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/runner.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// fileLogger opens the --log-file logger. The TUI owns stdout, so
// interactive commands never log to the terminal.
func fileLogger() (*log.Logger, io.Closer) {
	logger, closer, err := logging.OpenFile(flagLogFile, "runner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, closer = log.New(io.Discard), io.NopCloser(nil)
	}
	return applyLevel(logger), closer
}

// stderrLogger returns a logger for commands that do not own the terminal.
func stderrLogger(prefix string) *log.Logger {
	return applyLevel(logging.New(os.Stderr, prefix))
}

func applyLevel(logger *log.Logger) *log.Logger {
	logger, err := logging.WithLevel(logger, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return logger
}
