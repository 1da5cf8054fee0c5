package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/registry"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagKeyHold    time.Duration
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Star Catcher",
	Long: `Start playing in this terminal.

Controls:
  Left/A, Right/D  - Run
  Up/W/Space       - Jump (only while standing on something)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Terminals only report key presses, so a press keeps its direction
held for --key-hold. Holding a key down relies on auto-repeat.

Difficulty options:
  easy   - Slow bombs, speed grows with the score
  normal - Config defaults, speed grows with the score
  hard   - Fast bombs, speed grows with the score
  fixed  - No progression, bombs keep the config speed

Examples:
  starcatch play
  starcatch play --difficulty hard
  starcatch play --key-hold 250ms
  starcatch play --config ./my-level.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().DurationVar(&flagKeyHold, "key-hold", tui.DefaultKeyHold, "How long a key press keeps a direction held")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores (default: $USER)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	starcatch.SetConfigPath(flagConfig)
	starcatch.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(starcatch.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "err", err)
		store = nil
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	runErr := tui.Run(game, store, cfg, tui.Options{
		Player:  player,
		KeyHold: flagKeyHold,
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
