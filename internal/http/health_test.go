//go:build !integration

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pressure-drop-service/internal/circuitbreaker"
)

func TestHealthHandler_Liveness(t *testing.T) {
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	openBreaker := func() *circuitbreaker.CircuitBreaker {
		cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour})
		_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
		return cb
	}

	tests := []struct {
		name           string
		setupHandler   func() *HealthHandler
		expectedStatus int
		expectedChecks map[string]interface{}
	}{
		{
			name:           "no checkers",
			setupHandler:   NewHealthHandler,
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "healthy database",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error { return nil }))
				h.RegisterCircuitBreaker("settings", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				return h
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"mongodb": "ok", "settings_circuit": "closed"},
		},
		{
			name: "database unreachable",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error {
					return errors.New("server selection timeout")
				}))
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"mongodb": "server selection timeout"},
		},
		{
			name: "open circuit breaker",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("logs", openBreaker())
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"logs_circuit": "open"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			tt.setupHandler().Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			var body struct {
				Status string                 `json:"status"`
				Checks map[string]interface{} `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedChecks, body.Checks)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ok", body.Status)
			} else {
				assert.Equal(t, "degraded", body.Status)
			}
		})
	}
}
