//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pressure-drop-service/config"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "default config"},
		{
			name:   "cache enabled",
			mutate: func(c *config.Config) { c.Cache.Size = 100 },
		},
		{
			name: "api key auth",
			mutate: func(c *config.Config) {
				c.Auth.Enabled = true
				c.Auth.APIKeys = map[string]bool{"test-key": true}
			},
		},
		{
			name: "jwt auth",
			mutate: func(c *config.Config) {
				c.Auth.Enabled = true
				c.Auth.JWTEnabled = true
				c.Auth.JWTSecretKey = "test-secret"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			a := InitializeApp(cfg)
			t.Cleanup(func() { _ = a.Close(context.Background()) })

			require.NotNil(t, a.Router)
			w := httptest.NewRecorder()
			a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestInitializeApp_ServesCalculation(t *testing.T) {
	a := InitializeApp(testConfig())
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(waterLine))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pressure_drop":210`)
}

func TestInitializeApp_ConfiguredGravity(t *testing.T) {
	cfg := testConfig()
	cfg.Calculation.Gravity = 9.81

	a := InitializeApp(cfg)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	assert.Equal(t, 9.81, a.services.Calculator.Settings().Gravity)
}

func TestApp_Close(t *testing.T) {
	a := InitializeApp(testConfig())

	assert.NoError(t, a.Close(context.Background()))
	assert.NoError(t, a.Close(context.Background()), "closing twice is harmless")
}
