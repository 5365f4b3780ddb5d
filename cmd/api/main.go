package main

import (
	"context"
	"os"

	"github.com/yigit/unibrowser/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/unibrowser/internal/server"
)

// @title University Data Browser API
// @version 1.0
// @description Search and chart classrooms, departments, courses and instructors of a university dataset
// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
