package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/pressure-drop-service/internal/i18n"
	"github.com/guttosm/pressure-drop-service/internal/metrics"
	"github.com/guttosm/pressure-drop-service/internal/middleware"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// exportPath serves binary downloads that are not worth compressing again.
const exportPath = "/api/report/export"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit  int
	RateWindow time.Duration
	// APIKeys are accepted when EnableAuth is set and JWT auth is off.
	APIKeys    map[string]bool
	EnableAuth bool
	// JWTEnabled protects /api with bearer tokens issued by TokenService.
	JWTEnabled        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	RequestTimeout    time.Duration
	LoggingService    service.LoggingService
	SettingsService   service.SettingsService
	TokenService      service.TokenService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultRequestTimeout,
	}
}

// NewRouter creates and configures the Gin router for the pressure drop service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	if cfg.JWTEnabled && cfg.TokenService != nil {
		NewAuthRoutes(cfg.TokenService).RegisterRoutes(api)
	}

	protected := api.Group("")
	configureProtectedMiddleware(protected, &cfg)

	for _, routes := range businessRoutes(handler, &cfg) {
		routes.RegisterRoutes(protected)
	}

	router.NoRoute(notFound)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(exportPath),
		middleware.RequestLogger(cfg.LoggingService, "/healthz", "/readyz", "/metrics"),
		middleware.ErrorHandler(),
		middleware.Timeout(cfg.RequestTimeout),
	)

	router.Use(func(c *gin.Context) {
		c.Set("logging_service", cfg.LoggingService)
		c.Next()
	})

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler == nil {
		healthHandler = NewHealthHandler()
	}
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureProtectedMiddleware authenticates the business routes. The
// per-client limiter and idempotency run after authentication so both are
// keyed by the client ID.
func configureProtectedMiddleware(protected *gin.RouterGroup, cfg *RouterConfig) {
	switch {
	case cfg.JWTEnabled && cfg.TokenService != nil:
		protected.Use(middleware.JWTAuth(cfg.TokenService))
	case cfg.EnableAuth && len(cfg.APIKeys) > 0:
		protected.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	if cfg.RateLimit > 0 && (cfg.JWTEnabled || cfg.EnableAuth) {
		clientLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(clientLimiter.ClientRateLimit())
	}

	if cfg.EnableIdempotency {
		protected.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
}

// notFound answers unknown routes with a translated error body.
func notFound(c *gin.Context) {
	NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
}

func businessRoutes(handler *Handler, cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if handler != nil {
		groups = append(groups, NewCalculationRoutes(handler))
		if cfg.SettingsService != nil {
			groups = append(groups, NewSettingsRoutes(cfg.SettingsService, handler.calculator))
		}
	}
	if cfg.LoggingService != nil {
		groups = append(groups, NewLogsRoutes(cfg.LoggingService))
	}
	return groups
}
