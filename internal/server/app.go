// Package server initializes and runs the draft checkpoint server.
// It wires the ephemeral draft store, the integrity and access guards, the
// rate limiter, the optional durable archive, and the gRPC endpoint, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	"github.com/dmitrijs2005/draftkeeper/internal/server/access"
	"github.com/dmitrijs2005/draftkeeper/internal/server/config"
	"github.com/dmitrijs2005/draftkeeper/internal/server/events"
	"github.com/dmitrijs2005/draftkeeper/internal/server/integrity"
	"github.com/dmitrijs2005/draftkeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/drafts"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/ephemeral"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/draftkeeper/internal/server/schema"
	"github.com/dmitrijs2005/draftkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/draftkeeper/internal/server/grpc"
)

// janitorInterval is how often the ephemeral cache sweeps expired entries.
const janitorInterval = 1 * time.Minute

type App struct {
	config       *config.Config
	logger       logging.Logger
	cache        *ephemeral.Cache
	draftService *services.DraftService
	db           *sql.DB
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	cache := ephemeral.NewCache()
	store := drafts.NewMemoryRepository(cache)

	guard, err := integrity.NewGuard([]byte(c.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("integrity guard init error: %w", err)
	}

	limiter := ratelimit.NewLimiter(cache, c.RateLimitMax, c.RateLimitWindow)
	schemas := schema.NewRegistry()
	sink := events.NewLogSink(logger)

	var opts []services.DraftServiceOption
	var db *sql.DB
	accessGuard := access.NewGuard(nil)

	// the durable archive and delegation grants need PostgreSQL; without it
	// the server still serves ephemeral drafts for owners
	if c.ArchiveEnabled {
		db, err = sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}

		rm := repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(context.Background(), db); err != nil {
			return nil, fmt.Errorf("db migration error: %w", err)
		}

		accessGuard = access.NewGuard(rm.Delegations(db))
		opts = append(opts, services.WithArchiver(services.NewArchiveService(db, rm, c)))
	}

	ds := services.NewDraftService(
		store,
		guard,
		accessGuard,
		limiter,
		schemas,
		sink,
		c.DraftTTL,
		c.MaxPayloadBytes,
		logger,
		opts...,
	)

	return &App{config: c, logger: logger, cache: cache, draftService: ds, db: db}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.draftService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	go app.cache.RunJanitor(ctx, janitorInterval)
	defer app.cache.Stop()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}

}
