// Package app provides router configuration.
package app

import (
	"github.com/guttosm/pressure-drop-service/config"
	"github.com/guttosm/pressure-drop-service/internal/http"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(services.Calculator)
	healthHandler := http.NewHealthHandler()

	var loggingService service.LoggingService
	if db != nil {
		loggingService = db.LoggingService
		healthHandler.RegisterChecker("mongodb", db.DB)
		healthHandler.RegisterCircuitBreaker("mongodb_settings", db.SettingsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		JWTEnabled:        cfg.Auth.JWTEnabled,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		RequestTimeout:    cfg.Server.RequestTimeout,
		LoggingService:    loggingService,
		SettingsService:   services.SettingsService,
		TokenService:      services.TokenService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
