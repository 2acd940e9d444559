// Package app provides logger initialization.
package app

import (
	"github.com/wsawebmaster/delivery/config"
	"github.com/wsawebmaster/delivery/internal/logger"
)

// InitializeLogger initializes the global JSON logger. An empty level means info.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
