//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

func serve(a *App, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func TestInitializeApp_Integration(t *testing.T) {
	cfg := testConfig()
	cfg.Database = databaseConfig(t)

	a := InitializeApp(cfg)
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	require.NotNil(t, a.db, "database should be connected")

	t.Run("readiness reports mongodb", func(t *testing.T) {
		w := serve(a, http.MethodGet, "/readyz", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mongodb"`)
		assert.Contains(t, w.Body.String(), `"mongodb_settings_circuit"`)
	})

	t.Run("calculations are audited", func(t *testing.T) {
		w := serve(a, http.MethodPost, "/api/calculate", waterLine)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Eventually(t, func() bool {
			w := serve(a, http.MethodGet, "/api/logs?path=/api/calculate", "")
			if w.Code != http.StatusOK {
				return false
			}
			var body struct {
				Data struct {
					Total int64 `json:"total"`
				} `json:"data"`
			}
			return json.Unmarshal(w.Body.Bytes(), &body) == nil && body.Data.Total > 0
		}, 5*time.Second, 100*time.Millisecond)
	})

	t.Run("stored settings survive a restart", func(t *testing.T) {
		w := serve(a, http.MethodPut, "/api/settings", `{"gravity": 9.81, "laminar_formula": "textbook"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		restarted := InitializeApp(cfg)
		t.Cleanup(func() { _ = restarted.Close(context.Background()) })

		assert.Equal(t, model.CalculationSettings{Gravity: 9.81, LaminarFormula: model.LaminarFormulaTextbook},
			restarted.services.Calculator.Settings())
	})
}
