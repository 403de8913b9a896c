// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/pressure-drop-service/config"
	"github.com/guttosm/pressure-drop-service/internal/logger"
)

// InitializeLogger configures the global logger from the loaded configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
