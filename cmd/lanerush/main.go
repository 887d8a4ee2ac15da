// lanerush is an endless lane-runner for the terminal.
//
// Usage:
//
//	lanerush play            - Play in the current terminal
//	lanerush serve           - Start an SSH server for remote play
//	lanerush scores          - Show recorded runs
//	lanerush simulate        - Run the simulation headless
//
// Global flags:
//
//	--fps <rate>    - Tick rate (default: 30)
//	--seed <value>  - RNG seed for reproducible runs
//	--db <path>     - Runs database path (default: ~/.lanerush/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game with the registry.
	_ "github.com/lanerush/lanerush/internal/games/runner"
)

const gameID = "lanerush"

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanerush",
	Short: "Lane Rush - an endless lane-runner in your terminal",
	Long: `Lane Rush is a terminal arcade game: dodge between three lanes,
blast the hazards rolling toward you, collect gems and letters, and
spend your score on upgrades between levels.

Examples:
  lanerush play
  lanerush play --difficulty hard
  lanerush scores
  lanerush serve --ssh :2222
  lanerush simulate --ticks 5000`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanerush/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
