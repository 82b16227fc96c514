package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"pandas-platform/backend/config"
	"pandas-platform/backend/routes"
	"pandas-platform/backend/seeds"
	"pandas-platform/backend/store"
	"pandas-platform/backend/utils"
)

// @title Pandas Learning Platform API
// @version 1.0.0
// @description Module catalog, accounts and per-topic progress tracking.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := utils.InitLogger()
		bootLogger.Fatal().Err(err).Msg("error loading config")
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		Level:        cfg.LogLevel,
		EnableColors: !cfg.IsProduction(),
	})

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("error initializing database")
	}
	if err := store.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("error migrating database")
	}

	// Seed the module catalog
	catalog := seeds.Modules()
	for i := range catalog {
		if err := catalog[i].Validate(); err != nil {
			logger.Fatal().Err(err).Msg("invalid module catalog")
		}
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := store.NewGormStore(db).SeedModules(ctx, catalog); err != nil {
		logger.Fatal().Err(err).Msg("error seeding modules")
	}

	// Create Fiber app and routes
	app := routes.NewApp(cfg, logger)
	routes.SetupRoutes(app, db, cfg, logger)

	// Start server
	go func() {
		logger.Info().Str("port", cfg.ServerPort).Str("environment", cfg.Environment).Msg("server starting")
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			logger.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during shutdown")
	}
	if err := utils.CloseDB(db); err != nil {
		logger.Error().Err(err).Msg("error closing database")
	}

	logger.Info().Msg("server exited")
}
