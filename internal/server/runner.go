// Package server wires the record store, the selection snapshots and the
// HTTP API together and runs them until shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jroosing/eqrng/internal/api"
	"github.com/jroosing/eqrng/internal/config"
	"github.com/jroosing/eqrng/internal/database"
	"github.com/jroosing/eqrng/internal/roster"
)

// Runner orchestrates startup, serving and shutdown.
type Runner struct {
	logger   *slog.Logger
	version  string
	onListen func(addr string)
}

// NewRunner creates a new server runner with the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger, version: "dev"}
}

// SetVersion sets the release version reported by /version.
func (r *Runner) SetVersion(v string) {
	r.version = v
}

// SetOnListen registers a callback invoked with the bound address once the
// listener is open.
func (r *Runner) SetOnListen(fn func(addr string)) {
	r.onListen = fn
}

// Run starts the service with the given configuration.
//
// Server lifecycle:
//  1. Open the database, migrating it when configured
//  2. Import the seed file into empty tables (if configured)
//  3. Load the race and class table
//  4. Build the selection snapshots
//  5. Serve HTTP until SIGINT/SIGTERM
//  6. Gracefully stop with cfg.Server.ShutdownTimeout
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext starts the service and blocks until ctx is canceled or the
// HTTP server fails.
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	db, err := OpenDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			r.logger.Warn("failed to close database", "err", err)
		}
	}()

	if cfg.Database.SeedFile != "" {
		if err := r.seed(ctx, db, cfg.Database.SeedFile); err != nil {
			return err
		}
	}

	rs, err := roster.Load(cfg.Roster.ClassMapFile)
	if err != nil {
		return err
	}

	srv := api.New(cfg, db, r.logger)
	h := srv.Handler()
	h.SetVersion(r.version)
	h.SetRoster(rs)

	zones, instances, err := h.Reload(ctx)
	if err != nil {
		return fmt.Errorf("failed to load selection snapshots: %w", err)
	}

	ln, err := net.Listen("tcp", srv.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr(), err)
	}
	r.logStartup(cfg, ln.Addr().String(), zones, instances)
	if r.onListen != nil {
		r.onListen(ln.Addr().String())
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	// Wait for shutdown or error
	select {
	case <-ctx.Done():
		// shutdown requested via signal
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	}

	// Graceful shutdown
	r.logger.Info("shutting down", "timeout", cfg.ShutdownTimeout())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// OpenDatabase opens the configured SQLite file, creating its directory.
func OpenDatabase(dc config.DatabaseConfig) (*database.DB, error) {
	if dir := filepath.Dir(dc.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return database.Open(dc.Path, database.Options{
		MaxOpenConns: dc.MaxOpenConns,
		Migrate:      dc.MigrateOnStartup,
	})
}

// seed imports path into the tables that are still empty.
func (r *Runner) seed(ctx context.Context, db *database.DB, path string) error {
	s, err := database.LoadSeedFile(path)
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := db.Import(ctx, s, database.SeedOptions{})
	if err != nil {
		return fmt.Errorf("failed to import seed %s: %w", path, err)
	}
	r.logger.Info("seed imported",
		"file", path,
		"zones", res.Zones,
		"instances", res.Instances,
		"links", res.Links,
		"skipped", res.Skipped,
		"took", time.Since(start),
	)
	return nil
}

func (r *Runner) logStartup(cfg *config.Config, addr string, zones, instances int) {
	r.logger.Info("eqrng listening",
		"addr", addr,
		"version", r.version,
		"zones", zones,
		"instances", instances,
		"admin", cfg.Admin.Enabled,
		"admin_key", cfg.Admin.APIKey != "",
		"metrics", cfg.Metrics.Enabled,
		"compression", cfg.Server.Compression,
	)
	if cfg.Admin.Enabled && cfg.Admin.APIKey == "" {
		r.logger.Warn("admin endpoints are enabled without an API key", "allow_unauthenticated", cfg.Admin.AllowUnauthenticated)
	}
}
