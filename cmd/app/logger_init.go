package main

import (
	"github.com/jpeder/gamevault/internal/config"
	"github.com/jpeder/gamevault/internal/handler"
	"github.com/jpeder/gamevault/internal/logger"
)

const serviceName = "gamevault"

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		handler.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
