package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nmelnik/bayduel/internal/config"
	"github.com/nmelnik/bayduel/internal/core"
	"github.com/nmelnik/bayduel/internal/duel"
	"github.com/nmelnik/bayduel/internal/platform/tui"
	"github.com/nmelnik/bayduel/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a local duel",
	Long: `Start a two-player duel on this terminal.

Default controls:
  Player 1: W/A/S/D to steer, F to fire
  Player 2: Arrow keys to steer, Enter to fire
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Key bindings can be customized via a YAML config file.

Examples:
  bayduel play
  bayduel play --fps 30
  bayduel play --config ./my-controls.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom controls config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	duelCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the duel still works
		store = nil
	}

	keys := tui.NewKeyMapper(duelCfg.Controls)
	runErr := tui.Run(duel.New(), store, keys, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running duel: %v\n", runErr)
		os.Exit(1)
	}
}
