//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pressure-drop-service/internal/service"
)

func TestInitializeRouter(t *testing.T) {
	cfg := testConfig()
	cfg.Server.CORSOrigins = []string{"https://plant.example.com"}
	cfg.Server.RequestTimeout = 5 * time.Second
	cfg.Server.SwaggerUser = "docs"
	cfg.Server.SwaggerPass = "docs-pass"
	cfg.Auth.Enabled = true
	cfg.Auth.APIKeys = map[string]bool{"key": true}

	services := &ServiceComponents{
		Calculator:      service.NewPressureDropCalculatorService(),
		SettingsService: service.NewSettingsService(nil, nil),
	}

	rc := InitializeRouter(services, nil, cfg)

	require.NotNil(t, rc.Handler)
	require.NotNil(t, rc.HealthHandler)
	assert.Equal(t, 100, rc.Config.RateLimit)
	assert.Equal(t, time.Minute, rc.Config.RateWindow)
	assert.True(t, rc.Config.EnableAuth)
	assert.True(t, rc.Config.EnableIdempotency)
	assert.False(t, rc.Config.JWTEnabled)
	assert.Equal(t, cfg.Auth.APIKeys, rc.Config.APIKeys)
	assert.Equal(t, cfg.Server.CORSOrigins, rc.Config.CORSOrigins)
	assert.Equal(t, "docs", rc.Config.SwaggerUser)
	assert.Equal(t, "docs-pass", rc.Config.SwaggerPass)
	assert.Equal(t, 5*time.Second, rc.Config.RequestTimeout)
	assert.Nil(t, rc.Config.LoggingService)
	assert.Nil(t, rc.Config.TokenService)
	assert.NotNil(t, rc.Config.SettingsService)
}
