package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/service"
)

// RouteGroup registers a set of related routes on a router group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// CalculationRoutes registers the calculation and report endpoints.
type CalculationRoutes struct {
	handler *Handler
}

// NewCalculationRoutes creates a new CalculationRoutes instance.
func NewCalculationRoutes(handler *Handler) *CalculationRoutes {
	return &CalculationRoutes{handler: handler}
}

// RegisterRoutes registers POST /calculate, /report and /report/export.
func (r *CalculationRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculate", r.handler.Calculate)
	rg.POST("/report", r.handler.Report)
	rg.POST("/report/export", r.handler.ExportReport)
}

// SettingsRoutes registers the calculation settings endpoints.
type SettingsRoutes struct {
	handler *SettingsHandler
}

// NewSettingsRoutes creates a new SettingsRoutes instance.
func NewSettingsRoutes(settingsService service.SettingsService, calculator service.PressureDropCalculator) *SettingsRoutes {
	return &SettingsRoutes{handler: NewSettingsHandler(settingsService, calculator)}
}

// RegisterRoutes registers GET and PUT /settings and GET /settings/history.
func (r *SettingsRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("", r.handler.GetSettings)
		settings.PUT("", r.handler.UpdateSettings)
		settings.GET("/history", r.handler.ListSettingsHistory)
	}
}

// LogsRoutes registers the log query endpoint.
type LogsRoutes struct {
	handler *LogsHandler
}

// NewLogsRoutes creates a new LogsRoutes instance.
func NewLogsRoutes(loggingService service.LoggingService) *LogsRoutes {
	return &LogsRoutes{handler: NewLogsHandler(loggingService)}
}

// RegisterRoutes registers GET /logs.
func (r *LogsRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/logs", r.handler.ListLogs)
}

// AuthRoutes registers the token endpoint. It is public by nature.
type AuthRoutes struct {
	handler *AuthHandler
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(tokenService service.TokenService) *AuthRoutes {
	return &AuthRoutes{handler: NewAuthHandler(tokenService)}
}

// RegisterRoutes registers POST /auth/token.
func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/token", r.handler.IssueToken)
}
