package main

import (
	"os"

	"github.com/yigit/coursescheduler/internal/bootstrap"
	"github.com/yigit/coursescheduler/internal/config"
	"github.com/yigit/coursescheduler/internal/pkg/logger"
	"github.com/yigit/coursescheduler/internal/server"
)

// @title Course Scheduler API
// @version 1.0
// @description Greeting and initial course list for the course scheduler web client
// @BasePath /api/v1
// @schemes http https

func main() {
	configPath := config.GetEnv("CONFIG_PATH", bootstrap.DefaultConfigPath)

	srv, err := server.NewServer(configPath)
	if err != nil {
		// Details are logged inside NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
