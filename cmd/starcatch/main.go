// starcatch is a terminal platformer: run and jump across platforms catching
// falling stars while dodging bombs.
//
// Usage:
//
//	starcatch play           - Play in this terminal
//	starcatch serve          - Start SSH server for remote play
//	starcatch scores         - Show high scores
//	starcatch sim            - Run a scripted game without a terminal
//	starcatch list           - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.starcatch/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the game
	_ "github.com/vovakirdan/starcatch/internal/games/starcatch"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatch",
	Short: "Star Catcher - a platformer in your terminal",
	Long: `Star Catcher is a single-screen platformer played in the terminal.

Catch every star to release a new wave, and a bomb that bounces
around the level. Touch a bomb and the game is over.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a scripted game and print the final state
  list     - Show registered games

Examples:
  starcatch play
  starcatch play --difficulty hard
  starcatch serve --ssh :2222
  starcatch sim --ticks 600 --input "right*60,up,idle*30"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starcatch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger from the global flags. fallback is
// used when no --log-file is given; interactive commands pass io.Discard so
// log lines never land on the game screen. The returned func closes the log
// file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "starcatch",
		Level:           level,
	})
	return logger, closeFn, nil
}
