package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"urlhealth/internal/cache"
	"urlhealth/internal/checker"
	"urlhealth/internal/config"
	"urlhealth/internal/handler"
	"urlhealth/internal/metrics"
	custommiddleware "urlhealth/internal/middleware"
	"urlhealth/internal/prober"
	"urlhealth/internal/queue"
	"urlhealth/internal/service"
	"urlhealth/internal/storage"
	"urlhealth/internal/storage/postgres"
	"urlhealth/internal/storage/sqlite"
	"urlhealth/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, closeStore, pool, err := openStore(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeStore()

	resultCache, err := cache.New(cfg.Cache.MaxSizePow2, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer resultCache.Close()

	recorder := metrics.NewRecorder(pool, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	urlProber := prober.New(
		time.Duration(cfg.Checker.TimeoutSeconds)*time.Second,
		cfg.Checker.MaxRedirects,
	)

	jobQueue := queue.New(cfg.Queue.BufferSize)
	worker := checker.NewWorker(store, resultCache, urlProber, jobQueue, recorder, logger, cfg.Checker.MaxRetries)
	jobQueue.Start(ctx, cfg.Queue.Workers, worker.Consume)
	defer jobQueue.Stop()

	batchService := service.NewBatchService(store, jobQueue, logger, cfg.Queue.ChunkSize)

	urlValidator := validation.NewURLValidator(
		cfg.Validation.MaxURLLength,
		cfg.Validation.MaxBatchSize,
		cfg.Validation.AllowPrivateIPs,
	)

	h := handler.New(batchService, urlValidator, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.Metrics(recorder))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	h.Register(e)

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.String("database_driver", cfg.Database.Driver),
		slog.Int("queue_workers", cfg.Queue.Workers),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	httpServer := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	go func() {
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	// In-flight checks drain via the deferred jobQueue.Stop.
	return nil
}

// openStore builds the configured Storer. The returned pool is non-nil only
// for postgres and feeds the metrics recorder.
func openStore(ctx context.Context, cfg *config.DatabaseConfig) (storage.Storer, func(), *pgxpool.Pool, error) {
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
		)
		store, err := postgres.New(ctx, dsn)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, store.Close, store.Pool(), nil
	case "sqlite":
		store, err := sqlite.New(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
