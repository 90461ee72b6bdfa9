// bayduel is a two-player naval duel played on a shared keyboard in the terminal.
//
// Usage:
//
//	bayduel play              - Start a local duel
//	bayduel serve             - Start SSH server for remote terminals
//	bayduel history           - Show past match results
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.bayduel/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bayduel",
	Short: "Bay Duel - two-player ship duel in your terminal",
	Long: `Bay Duel pits two ships against each other on a shared screen.
Both players play on the same keyboard: steer, shoot, and sink the
other ship before it sinks you.

Available commands:
  play     - Start a local duel
  serve    - Start SSH server for remote terminals
  history  - View past match results

Examples:
  bayduel play
  bayduel play --config ./my-controls.yaml
  bayduel serve --ssh :2222
  bayduel history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bayduel/matches.db", "Path to match results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
