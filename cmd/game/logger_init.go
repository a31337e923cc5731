package main

import (
	"github.com/gamedesigns/lootcrate/internal/config"
	"github.com/gamedesigns/lootcrate/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.Environment == logger.EnvironmentDev

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		logger.DefaultVersion,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
