package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/platform/tui"
	"github.com/vovakirdan/roadrush/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Road Rush SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection drives its own game. Scores are stored per server,
so all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.roadrush/host_key

Examples:
  roadrush serve                           # Listen on :23234 with auto-generated key
  roadrush serve --ssh :2222               # Listen on port 2222
  roadrush serve --host-key ./my_host_key  # Use specific host key
  roadrush serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	road, err := loadRoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Road = road
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if err := serve(cfg, openStore()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// serve runs the SSH server until it stops. The store may be nil and is
// closed before serve returns.
func serve(cfg tui.SSHServerConfig, store *storage.Store) error {
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if _, port, splitErr := net.SplitHostPort(server.Addr()); splitErr == nil {
		logger.Info("press Ctrl+C to stop", "connect", "ssh localhost -p "+port)
	}

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		return err
	}
	return nil
}
