//go:build integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pressure-drop-service/internal/circuitbreaker"
	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
	"github.com/guttosm/pressure-drop-service/internal/repository"
	"github.com/guttosm/pressure-drop-service/internal/service"
	"github.com/guttosm/pressure-drop-service/internal/testutil"
)

// steepLine climbs 100 m, so a 0.01 m/s² change in gravity moves the
// rounded result by one kPa.
const steepLine = `{"mass_flow": 36000, "viscosity": 1, "inner_diameter": 100, "absolute_roughness": 0.05,
	"margin_factor": 1, "density": 1000, "pipe_length": 500, "elevation_change": 100}`

func setupIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	calculator := service.NewPressureDropCalculatorService(service.WithCache(100, time.Minute))
	t.Cleanup(calculator.Stop)

	settingsRepo := repository.NewSettingsRepositoryWithCircuitBreaker(
		repository.NewSettingsRepository(db),
		circuitbreaker.New(circuitbreaker.DefaultConfig()),
	)
	settingsService := service.NewSettingsService(settingsRepo, calculator)

	health := NewHealthHandler()
	health.RegisterChecker("mongodb", db)

	cfg := DefaultRouterConfig()
	cfg.SettingsService = settingsService
	return NewRouter(NewHandler(calculator), health, cfg)
}

func pressureDrop(t *testing.T, router *gin.Engine) float64 {
	t.Helper()
	w := post(router, "/api/calculate", steepLine)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Data dto.CalculateResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Result.PressureDrop
}

func TestIntegration_SettingsUpdateChangesCalculation(t *testing.T) {
	router := setupIntegrationRouter(t)

	assert.Equal(t, 1061.0, pressureDrop(t, router))

	req := httptest.NewRequest(http.MethodPut, "/api/settings", bytes.NewBufferString(`{"gravity": 9.81, "laminar_formula": "literal"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, 1062.0, pressureDrop(t, router), "cached result must not survive a settings change")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var active struct {
		Data dto.SettingsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
	assert.Equal(t, 9.81, active.Data.Gravity)
	assert.Equal(t, 1, active.Data.Version)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings/history", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Data []dto.SettingsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history.Data, 1)
}

func TestIntegration_Readiness(t *testing.T) {
	router := setupIntegrationRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
}
