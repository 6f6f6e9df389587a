// ABOUTME: CLI command for the HTTP API server.
// ABOUTME: Serves chat, leaderboard, quests, and catalog routes with graceful shutdown.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stslabs/motiv8r/internal/server"
	"github.com/stslabs/motiv8r/internal/tasks"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API used by the dashboard and the coach chat.

ROUTES (under /api/v1):

  GET  /exercises           Catalog, optionally ?q= filtered
  GET  /exercises/{name}    One exercise (case-insensitive)
  GET  /quests/today        Today's quest board
  POST /quests/{id}/claim   Claim a completed quest
  GET  /leaderboard         XP ranking
  GET  /messages            Coach chat history
  POST /messages            Send a message (requires sign-in)
  GET  /programs            Stored programs

The listen address comes from --addr, falling back to "listen_addr" in
the config file, then :8487.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.GetListenAddr()
		}

		log := slog.New(slog.NewTextHandler(os.Stderr, nil))
		srv := server.New(appStore, engine, provider, tasks.New(), log)
		defer srv.Close()

		httpServer := &http.Server{
			Addr:              addr,
			Handler:           srv,
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("listening", "addr", addr)
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, then :8487)")
	rootCmd.AddCommand(serveCmd)
}
