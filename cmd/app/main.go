package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MudShop_Go/internal/concurrency"
	"github.com/osse101/MudShop_Go/internal/config"
	"github.com/osse101/MudShop_Go/internal/database"
	"github.com/osse101/MudShop_Go/internal/database/postgres"
	"github.com/osse101/MudShop_Go/internal/economy"
	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/eventlog"
	"github.com/osse101/MudShop_Go/internal/item"
	"github.com/osse101/MudShop_Go/internal/metrics"
	"github.com/osse101/MudShop_Go/internal/repository"
	"github.com/osse101/MudShop_Go/internal/restock"
	"github.com/osse101/MudShop_Go/internal/room"
	"github.com/osse101/MudShop_Go/internal/scheduler"
	"github.com/osse101/MudShop_Go/internal/server"
	"github.com/osse101/MudShop_Go/internal/sse"
	"github.com/osse101/MudShop_Go/internal/verbs"
	"github.com/osse101/MudShop_Go/internal/worker"
	"github.com/osse101/MudShop_Go/internal/world"
)

const (
	shutdownTimeout = 10 * time.Second
	jobQueueSize    = 64
	cleanupInterval = 24 * time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// Persistence
	var (
		dbPool     database.Pool
		roomStore  repository.Room
		ledgerRepo eventlog.Repository
	)
	if cfg.UsesPostgres() {
		pool, err := openDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()
		dbPool = pool
		roomStore = postgres.NewRoomRepository(pool)
		ledgerRepo = postgres.NewEventLogRepository(pool)
	} else {
		roomStore = world.NewMemoryStore()
		ledgerRepo = eventlog.NewMemoryRepository()
	}

	// Assets
	catalog, err := item.NewLoader().LoadCatalog(ctx, filepath.Join(cfg.DataPath, "items", item.ConfigFileName))
	if err != nil {
		return err
	}
	registry := restock.NewRegistry(cfg.AssetsPath)
	if err := registry.Load(ctx); err != nil {
		slog.Warn("Restock pools unavailable; display cases will not refill", "error", err)
	}

	// Events
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	sse.NewSubscriber(hub, bus).Subscribe()
	metrics.NewEventMetricsCollector().Register(bus)
	ledger := eventlog.NewService(ledgerRepo)
	if err := ledger.Subscribe(bus); err != nil {
		return err
	}

	// World and shops
	locks := concurrency.NewLockManager()
	svc := world.NewService(roomStore, hub, cfg.DataPath).WithLocks(locks)
	if n, err := svc.Preload(ctx); err != nil {
		slog.Warn("Room preload failed", "error", err)
	} else {
		slog.Info("Rooms preloaded", "count", n)
	}

	mirror := room.NewMirror(svc)
	shops := economy.NewManager(cfg.DataPath, mirror, catalog, svc, bus, cfg.ControllerCacheSize, cfg.ControllerCacheTTL)
	deliverer := economy.NewDeliverer(mirror, svc, registry, bus)
	restocker := restock.NewRestocker(registry, catalog, mirror, svc, bus)

	executor := verbs.NewExecutor(svc, catalog, shops, deliverer, mirror, locks, bus).
		WithDisplayMarkup(cfg.DisplayMarkup)
	tick := world.NewTickJob(svc, restocker, shops, locks)

	// Background work
	pool := worker.NewPool(cfg.WorkerCount, jobQueueSize)
	pool.Start()
	defer pool.Stop()

	sched := scheduler.New(pool)
	defer sched.Stop()
	sched.Schedule(cfg.TickInterval, tick)
	sched.ScheduleNow(cleanupInterval, eventlog.NewCleanupJob(ledger, cfg.LedgerRetentionDays))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Services{
		DBPool:   dbPool,
		Executor: executor,
		Players:  svc,
		Rooms:    svc,
		Ticker:   tick,
		Ledger:   ledger,
		Hub:      hub,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func openDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
