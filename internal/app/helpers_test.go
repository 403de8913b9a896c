package app

import (
	"time"

	"github.com/guttosm/pressure-drop-service/config"
	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

// testConfig returns a database-less configuration with the service defaults.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 30 * time.Second,
		},
		Log: config.LogConfig{Level: "error"},
		Cache: config.CacheConfig{TTL: time.Minute},
		Calculation: config.CalculationConfig{
			Gravity:        model.DefaultGravity,
			LaminarFormula: model.LaminarFormulaLiteral,
		},
		Database: config.DatabaseConfig{DatabaseName: "pressure_drop"},
	}
}

const waterLine = `{
	"mass_flow": 36000,
	"viscosity": 1,
	"inner_diameter": 100,
	"absolute_roughness": 0.05,
	"margin_factor": 1.15,
	"density": 1000,
	"pipe_length": 500,
	"elevation_change": 10,
	"elbow_and_tee": 10,
	"globe_valve": 2,
	"check_valve": 1
}`
