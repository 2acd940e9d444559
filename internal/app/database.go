// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wsawebmaster/delivery/config"
	"github.com/wsawebmaster/delivery/internal/circuitbreaker"
	"github.com/wsawebmaster/delivery/internal/middleware"
	"github.com/wsawebmaster/delivery/internal/repository"
	"github.com/wsawebmaster/delivery/internal/service"
)

// DatabaseComponents holds the operational log sink.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	LoggingService     service.LoggingService
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the request and audit log sink, then
// starts the async logger on it. Returns nil if the database is disabled or unreachable;
// the storefront works without it.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without log sink")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, int(cfg.LogsTTL.Hours()/24)); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	cbCfg := circuitbreaker.DefaultConfig()
	cbCfg.Name = "mongodb-logs"
	cbCfg.OnStateChange = logBreakerTransition
	logsCB := circuitbreaker.New(cbCfg)

	loggingService := service.NewLoggingService(
		repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB),
	)
	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())

	return &DatabaseComponents{
		DB:                 db,
		LoggingService:     loggingService,
		LogsCircuitBreaker: logsCB,
	}
}

func logBreakerTransition(name string, from, to circuitbreaker.State) {
	event := log.Info()
	if to == circuitbreaker.StateOpen {
		event = log.Warn()
	}
	event.Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
}
