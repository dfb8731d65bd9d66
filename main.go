package main

import (
	"os"
	"os/signal"
	"syscall"

	"inventory/internal/app"
	"inventory/internal/config"
	"inventory/internal/repositories"
	"inventory/pkg/database"
	"inventory/pkg/logger"
	"inventory/pkg/metrics"
	"inventory/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Init("inventory", cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	// --- Database ---
	db, err := database.Open(database.Config{
		Driver:        cfg.DBDriver,
		DSN:           cfg.DatabaseDSN,
		MaxOpenConns:  cfg.DBMaxOpenConns,
		MaxIdleConns:  cfg.DBMaxOpenConns,
		SlowThreshold: cfg.DBSlowThreshold,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Logger.Error().Err(err).Msg("failed to close database")
		}
	}()

	if cfg.DBAutoMigrate {
		if err := repositories.Migrate(db); err != nil {
			logger.Logger.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	deps := app.Deps{
		Config:  cfg,
		DB:      db,
		Metrics: metrics.New(),
	}

	// --- RabbitMQ (optional) ---
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQURL,
			Exchange: cfg.RabbitMQExchange,
			Queue:    cfg.RabbitMQQueue,
		})
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		deps.Publisher = mqClient

		if cfg.RabbitMQConsume {
			logger.Logger.Info().Str("queue", cfg.RabbitMQQueue).Msg("starting stock event consumer")
			if err := mqClient.Consume(rabbitmq.LogStockEvent); err != nil {
				logger.Logger.Error().Err(err).Msg("failed to start stock event consumer")
			}
		}
	}

	server := app.New(deps)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Logger.Info().Str("port", cfg.AppPort).Msg("starting server")
		if err := server.Listen(cfg.AppPort); err != nil {
			logger.Logger.Error().Err(err).Msg("server stopped")
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	logger.Logger.Info().Msg("shutting down server")
	if err := server.Shutdown(); err != nil {
		logger.Logger.Error().Err(err).Msg("error during shutdown")
	}
	logger.Logger.Info().Msg("server gracefully stopped")
}
