package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nmelnik/bayduel/internal/platform/tui"
	"github.com/nmelnik/bayduel/internal/storage"
)

var flagPlain bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past match results",
	Long: `Display recorded match results and aggregate win counts.

Opens an interactive table by default. Use --plain for plain text
output suitable for piping.

Examples:
  bayduel history
  bayduel history --plain
  bayduel history --db ./matches.db`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print results as plain text instead of the interactive table")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printHistory(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store) {
	entries, err := store.RecentMatches(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History - Bay Duel")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bayduel play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-7s  %s\n", "#", "Winner", "HP A", "HP B", "Ticks", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-7s  %s\n", "----", "------", "----", "----", "-----", "----")

	for i, e := range entries {
		winner := "Tie"
		switch e.Winner {
		case storage.WinnerPlayer1:
			winner = "Player 1"
		case storage.WinnerPlayer2:
			winner = "Player 2"
		}
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %-5d  %-5d  %-7d  %s\n", i+1, winner, e.HP1, e.HP2, e.Ticks, dateStr)
	}

	stats, err := store.Stats()
	if err == nil && stats.Matches > 0 {
		fmt.Println()
		fmt.Printf("Matches: %d  Player 1 wins: %d  Player 2 wins: %d  Ties: %d\n",
			stats.Matches, stats.Player1Wins, stats.Player2Wins, stats.Ties)
	}
}
