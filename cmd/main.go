// Package main is the entry point for the pressure-drop-service application.
//
// @title           Pressure Drop Service API
// @version         1.0.0
// @description     API for sizing pipelines: computes the pressure drop of an incompressible single-phase flow.
//
//	The calculation covers frictional loss over the straight length and fitting equivalents, the design margin and the elevation term.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/pressure-drop-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if API key authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Access token from /api/auth/token, as "Bearer <token>". Required if JWT authentication is enabled.
//
// @tag.name        Calculation
// @tag.description Pressure drop calculation
//
// @tag.name        Report
// @tag.description Design reports and exports
//
// @tag.name        Settings
// @tag.description Versioned calculation settings
//
// @tag.name        Logs
// @tag.description Stored request and audit logs
//
// @tag.name        Auth
// @tag.description Client credential token exchange
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/pressure-drop-service/docs" // swagger docs

	"github.com/guttosm/pressure-drop-service/config"
	"github.com/guttosm/pressure-drop-service/internal/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout)

	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to release resources")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
