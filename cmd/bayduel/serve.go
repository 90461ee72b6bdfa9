package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmelnik/bayduel/internal/config"
	"github.com/nmelnik/bayduel/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the duel SSH server",
	Long: `Start an SSH server so players can duel from a remote terminal.

Each SSH connection gets its own match. Both players share the
connecting terminal's keyboard; match results are stored server-side.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bayduel/host_key

Flags override the corresponding values from the config file.

Examples:
  bayduel serve                           # Listen on :23235 with auto-generated key
  bayduel serve --ssh :2222               # Listen on port 2222
  bayduel serve --host-key ./my_host_key  # Use specific host key
  bayduel serve --db ./matches.db         # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom controls config YAML")
}

func runServe(cmd *cobra.Command, _ []string) {
	duelCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Config file provides defaults; explicit flags win.
	address := duelCfg.Server.Address
	if cmd.Flags().Changed("ssh") || address == "" {
		address = flagSSHAddr
	}
	hostKey := duelCfg.Server.HostKeyPath
	if cmd.Flags().Changed("host-key") {
		hostKey = flagHostKey
	}
	idleMinutes := duelCfg.Server.IdleTimeoutMinutes
	if cmd.Flags().Changed("idle-timeout") || idleMinutes <= 0 {
		idleMinutes = flagIdleTimeout
	}

	cfg := tui.SSHServerConfig{
		Address:     address,
		HostKeyPath: hostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(idleMinutes) * time.Minute,
		Controls:    duelCfg.Controls,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Bay Duel SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
