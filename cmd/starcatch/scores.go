package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starcatch/internal/games/starcatch"
	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high score table.

On a terminal the scores open in an interactive table; use --plain
for text output, or when piping.

Examples:
  starcatch scores
  starcatch scores --plain --limit 5
  starcatch scores --plain --limit 0
  starcatch scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print in plain mode (0 prints all)")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain text table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(starcatch.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("Scores cleared.")
		return
	}

	title := starcatch.New().Title()

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, starcatch.ID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var scores []storage.RunEntry
	if flagScoresLimit > 0 {
		scores, err = store.TopScores(starcatch.ID, flagScoresLimit)
	} else {
		scores, err = store.AllScores(starcatch.ID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'starcatch play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Stars", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-6d  %-5d  %s\n", i+1, e.Player, e.Score, e.Stars, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(starcatch.ID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Players: %d  |  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	}
}
