package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/config"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/ledger"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository/postgres"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/seed-orders/main.go <session-id>")
		fmt.Println("Example: go run cmd/seed-orders/main.go 3d0f1b8a-6c1e-4f43-9a8e-2b1d7f5c9e10")
		os.Exit(1)
	}

	sessionID, err := uuid.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid session id: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Storage.Driver != config.StoragePostgres {
		fmt.Fprintln(os.Stderr, "Seeding needs STORAGE_DRIVER=postgres, in-memory orders would vanish on exit")
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to prepare schema: %v\n", err)
		os.Exit(1)
	}

	orders := service.NewOrderService(postgres.NewLocalStorageRepository(db, logger), logger)
	written, err := orders.Seed(ctx, sessionID.String(), ledger.DemoOrders())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed orders: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Seeded %d demo orders for session %s\n", written, sessionID)
	if skipped := len(ledger.DemoOrders()) - written; skipped > 0 {
		fmt.Printf("%d orders were already present and left untouched\n", skipped)
	}
}
