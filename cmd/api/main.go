package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pantheonhq/soulengine/internal/api"
	"github.com/pantheonhq/soulengine/internal/config"
	"github.com/pantheonhq/soulengine/internal/content"
	"github.com/pantheonhq/soulengine/internal/infra/logging"
	"github.com/pantheonhq/soulengine/internal/infra/pgutils"
	"github.com/pantheonhq/soulengine/internal/services/player"
	"github.com/pantheonhq/soulengine/internal/store"
	pgstore "github.com/pantheonhq/soulengine/internal/store/postgres"
	sqlitestore "github.com/pantheonhq/soulengine/internal/store/sqlite"
	"github.com/pantheonhq/soulengine/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	cfg, err := config.LoadAPI()
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Content & store ---
	defs, err := content.Load(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	snapshots, err := openStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	shutdownqueue.Add(func(context.Context) error {
		slog.Info("Close store")
		return snapshots.Close()
	})

	playerSrv := player.New(snapshots, defs)

	// Checkpoint every live session before the store goes away.
	shutdownqueue.Add(func(c context.Context) error {
		slog.Info("Checkpoint sessions")
		return playerSrv.SaveAll(c)
	})

	// --- HTTP server ---
	srv := api.NewServer(cfg.Port, playerSrv)

	shutdownqueue.Add(func(c context.Context) error {
		slog.Info("Shut down server")

		err := srv.Shutdown(c)
		if err != nil {
			return fmt.Errorf("shutdown srv: %w", err)
		}

		return nil
	})

	// Run server
	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("API started", "port", cfg.Port, "store", cfg.Store.Driver)

	// --- Wait until either context cancels or server errors out ---
	select {
	case <-ctx.Done():
		// graceful path; deferred shutdownqueue.Shutdown will run
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}

func openStore(ctx context.Context, cfg config.StoreConfig) (store.SnapshotStore, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := pgutils.OpenDB(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}

		return pgstore.New(db), nil

	case config.DriverSQLite:
		return sqlitestore.Open(ctx, cfg.SQLitePath)

	case config.DriverMemory:
		return store.NewMemory(), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
