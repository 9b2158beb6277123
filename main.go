// main.go
package main

import (
	"context"
	"log"

	"surf-booking/cmd"
	"surf-booking/internal/cache"
	"surf-booking/internal/data/repository"
	"surf-booking/internal/payments"
	"surf-booking/internal/wire"
	"surf-booking/internal/worker"
	"surf-booking/pkg/database"
	"surf-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(context.Background(), db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Availability cache and its upstream provider
	availabilityCache := cache.NewAvailabilityCache(logger)
	slotProvider := cache.NewHTTPSlotProvider(config.Provider, logger)

	// Payment collaborator
	paymentProvider := payments.NewStripeProvider(config.Payment, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, availabilityCache, slotProvider, paymentProvider, config, logger)

	// Background maintenance: cache sweeps and waiver cleanup
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.NewMaintenance(app.Service, config, logger).Start(ctx)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
