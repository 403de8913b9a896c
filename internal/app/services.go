// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/guttosm/pressure-drop-service/config"
	"github.com/guttosm/pressure-drop-service/internal/logger"
	"github.com/guttosm/pressure-drop-service/internal/repository"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// settingsLoadTimeout bounds reading the stored settings at startup.
const settingsLoadTimeout = 5 * time.Second

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator      *service.PressureDropCalculatorService
	SettingsService service.SettingsService
	// TokenService is nil when JWT authentication is disabled.
	TokenService service.TokenService
}

// InitializeServices builds the calculator from the configured settings,
// then applies the active stored settings version when the database is
// available.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	opts := []service.Option{service.WithSettings(cfg.Calculation.Settings())}
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}
	calculator := service.NewPressureDropCalculatorService(opts...)

	var settingsRepo repository.SettingsRepositoryInterface
	if db != nil {
		settingsRepo = db.SettingsRepo
	}
	settingsService := service.NewSettingsService(settingsRepo, calculator)

	if settingsRepo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), settingsLoadTimeout)
		defer cancel()
		if err := settingsService.Load(ctx); err != nil {
			log := logger.Logger()
			log.Warn().Err(err).Msg("Failed to load stored calculation settings - using configured settings")
		}
	}

	return &ServiceComponents{
		Calculator:      calculator,
		SettingsService: settingsService,
		TokenService:    InitializeAuth(cfg.Auth),
	}
}
