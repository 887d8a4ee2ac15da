package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lanerush/lanerush/internal/platform/tui"
	"github.com/lanerush/lanerush/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Browse the recorded runs in an interactive table, or print them
to stdout with --plain.

Examples:
  lanerush scores
  lanerush scores --plain --limit 20
  lanerush scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print runs to stdout instead of the interactive view")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs cleared.")
		return
	}

	if flagScoresPlain {
		printRuns(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

// printRuns dumps the top runs and aggregate stats as plain text.
func printRuns(store *storage.Store) {
	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Play a game first!")
		return
	}

	fmt.Printf("Best runs:\n\n")
	fmt.Printf("%-5s %-8s %-6s %-8s %-8s %-8s %s\n",
		"Rank", "Score", "Level", "Dist", "Letters", "Result", "Date")
	fmt.Println("------------------------------------------------------------")
	for i, r := range runs {
		result := "-"
		if r.Victory {
			result = "victory"
		}
		fmt.Printf("%-5d %-8d %-6d %-8s %-8d %-8s %s\n",
			i+1, r.Score, r.Level,
			fmt.Sprintf("%dm", int(r.Distance)),
			r.Letters, result,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return
	}
	fmt.Printf("\nRuns: %d  Best: %d  Average: %.0f  Victories: %d\n",
		stats.RunCount, stats.BestScore, stats.AvgScore, stats.Victories)
}
