// Package app wires the subsystem together: it seeds the simulated backend,
// opens the local store, builds the sync client over an in-process transport,
// and optionally exposes the backend on a real listener for demos and chaos
// testing.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/talentflow-app/talentflow/internal/chaos"
	"github.com/talentflow-app/talentflow/internal/config"
	"github.com/talentflow-app/talentflow/internal/logging"
	"github.com/talentflow-app/talentflow/internal/simsrv"
	"github.com/talentflow-app/talentflow/internal/store"
	syncclient "github.com/talentflow-app/talentflow/internal/sync"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *simsrv.Server
	store  *store.Store
	client *syncclient.Client
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db := simsrv.NewDB()
	simsrv.Seed(db, cfg.Seed, simsrv.SeedJobCount, simsrv.SeedCandidateCount)

	backendPolicy := chaos.New(cfg.BackendMinDelay, cfg.BackendMaxDelay, cfg.BackendFailureRate, cfg.Seed)
	server := simsrv.New(db, backendPolicy, logger)

	st, err := store.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	// offset so the client's failure sequence differs from the backend's
	clientPolicy := chaos.New(cfg.ClientMinDelay, cfg.ClientMaxDelay, cfg.ClientFailureRate, cfg.Seed+1)
	client := syncclient.New(syncclient.InProcDoer{App: server.App()}, st, clientPolicy, logger)

	return &App{config: cfg, logger: logger, server: server, store: st, client: client}, nil
}

// Client returns the sync client UI code talks to.
func (app *App) Client() *syncclient.Client {
	return app.client
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the simulated API on the configured address until the context
// is cancelled or the listener fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting simulated hiring API", "addr", app.config.Addr, "seed", app.config.Seed)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Listen(app.config.Addr); err != nil {
			app.logger.Error(ctx, "listener stopped", "err", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	if err := app.server.Shutdown(); err != nil {
		app.logger.Error(ctx, "shutdown error", "err", err)
	}
	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "store close error", "err", err)
	}

	wg.Wait()
}
