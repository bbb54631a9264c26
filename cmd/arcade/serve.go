package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-arcade/internal/platform/tui"
	"github.com/vovakirdan/block-arcade/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server and HTTP leaderboard",
	Long: `Start an SSH server that allows users to connect and play games,
and optionally an HTTP server exposing the leaderboard as JSON.

Each SSH connection gets their own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Leaderboard endpoints (with --http):
  GET /healthz
  GET /api/games
  GET /api/games/{id}/scores?limit=N
  GET /api/games/{id}/stats

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --http :8080              # Also serve the leaderboard
  arcade serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard HTTP address (disabled if empty)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	tui.SetLogger(logger)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}
	sshServer, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("creating SSH server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	servers := []func(context.Context) error{sshServer.Serve}
	if flagHTTPAddr != "" {
		var scores web.ScoreSource
		if store != nil {
			scores = store
		}
		servers = append(servers, web.NewServer(flagHTTPAddr, scores, logger).Serve)
	}

	// The first server to fail stops the others
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, len(servers))
	for _, serve := range servers {
		go func() {
			err := serve(ctx)
			cancel()
			errc <- err
		}()
	}

	var errs []error
	for range servers {
		if err := <-errc; err != nil {
			errs = append(errs, err)
		}
	}
	logger.Info("servers stopped")
	return errors.Join(errs...)
}
