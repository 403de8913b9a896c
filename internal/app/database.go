// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/pressure-drop-service/config"
	"github.com/guttosm/pressure-drop-service/internal/circuitbreaker"
	"github.com/guttosm/pressure-drop-service/internal/logger"
	"github.com/guttosm/pressure-drop-service/internal/repository"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	SettingsRepo           repository.SettingsRepositoryInterface
	LoggingService         service.LoggingService
	SettingsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

// InitializeDatabase connects to MongoDB and builds the circuit-breaker
// protected repositories. It returns nil when the database is disabled or
// unreachable; the service then runs on configured settings only.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	log := logger.Logger()
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, logsTTLDays(cfg.LogsTTL)); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	settingsCB := newCircuitBreaker(cfg, "mongodb-settings")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	settingsRepo := repository.NewSettingsRepositoryWithCircuitBreaker(repository.NewSettingsRepository(db), settingsCB)
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                     db,
		SettingsRepo:           settingsRepo,
		LoggingService:         service.NewLoggingService(logsRepo),
		SettingsCircuitBreaker: settingsCB,
		LogsCircuitBreaker:     logsCB,
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}

// logsTTLDays converts the configured retention to whole days, keeping at
// least one.
func logsTTLDays(ttl time.Duration) int {
	return max(int(ttl.Hours()/24), 1)
}
