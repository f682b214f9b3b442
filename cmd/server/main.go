package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/api"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/catalog"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/config"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/messaging/rabbitmq"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/pricing"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository/memory"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository/postgres"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/service"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/logging"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/shutdown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	kv, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	publisher, closePublisher, err := openPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	products := catalog.NewDefault()
	calc := pricing.NewCalculator(cfg.Pricing)

	svcs := api.Services{
		Catalog:  products,
		Carts:    service.NewCartService(products, kv, calc, logger),
		Checkout: service.NewCheckoutService(kv, calc, publisher, cfg.Checkout, logger),
		Orders:   service.NewOrderService(kv, logger),
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(cfg, svcs, logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10*time.Second + cfg.Checkout.Delay,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("storage", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("Server shutdown complete")
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.KeyValueStore, func(), error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		logger.Warn("Using in-memory storage, carts and orders are lost on restart")
		return memory.NewLocalStorage(), func() {}, nil
	}

	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return postgres.NewLocalStorageRepository(db, logger), closeDB(db, logger), nil
}

func closeDB(db *sql.DB, logger *zap.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}
}

func openPublisher(cfg *config.Config, logger *zap.Logger) (service.OrderPublisher, func(), error) {
	if cfg.RabbitMQ.URL == "" {
		logger.Info("RABBITMQ_URL not set, order events are not published")
		return service.NewNopPublisher(), func() {}, nil
	}

	pool, err := rabbitmq.NewChannelPool(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, cfg.RabbitMQ.ChannelPoolSize, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return rabbitmq.NewPublisher(pool, cfg.RabbitMQ.Queue, logger), pool.Close, nil
}
