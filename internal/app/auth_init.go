// Package app provides authentication initialization.
package app

import (
	"github.com/guttosm/pressure-drop-service/config"
	"github.com/guttosm/pressure-drop-service/internal/logger"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// defaultJWTSecret is the placeholder secret shipped in the configuration defaults.
const defaultJWTSecret = "your-secret-key-change-in-production"

// InitializeAuth returns the token service when JWT authentication is
// enabled, and warns about configurations that would lock every client out
// or sign with the placeholder secret.
func InitializeAuth(cfg config.AuthConfig) service.TokenService {
	log := logger.Logger()

	if cfg.Enabled && !cfg.JWTEnabled && len(cfg.APIKeys) == 0 {
		log.Warn().Msg("API key authentication enabled without API_KEYS - the API is unprotected")
	}

	if !cfg.JWTEnabled {
		return nil
	}

	if cfg.JWTSecretKey == defaultJWTSecret || cfg.JWTSecretKey == "" {
		log.Warn().Msg("JWT_SECRET_KEY is not set - tokens are signed with the default secret")
	}
	if len(cfg.Clients) == 0 {
		log.Warn().Msg("JWT authentication enabled without AUTH_CLIENTS - no client can obtain a token")
	}

	log.Info().
		Int("clients", len(cfg.Clients)).
		Dur("access_token_ttl", cfg.AccessTokenTTL).
		Msg("JWT authentication enabled")

	return service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg))
}
