// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/config"
	"github.com/guttosm/pressure-drop-service/internal/http"
	"github.com/guttosm/pressure-drop-service/internal/logger"
	"github.com/guttosm/pressure-drop-service/internal/middleware"
)

// App is the wired application.
type App struct {
	Router   *gin.Engine
	services *ServiceComponents
	db       *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	// The logger comes first; every other component logs while starting.
	InitializeLogger(cfg.Log)

	db := InitializeDatabase(cfg.Database)
	if db != nil {
		middleware.InitAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	services := InitializeServices(cfg, db)
	routerComponents := InitializeRouter(services, db, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		services: services,
		db:       db,
	}
}

// Close flushes pending audit entries and releases the cache and database.
func (a *App) Close(ctx context.Context) error {
	middleware.StopAsyncLogger()
	if a.services != nil && a.services.Calculator != nil {
		a.services.Calculator.Stop()
	}
	if err := a.db.Close(ctx); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("Failed to close MongoDB connection")
		return err
	}
	return nil
}
