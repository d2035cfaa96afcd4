package main

import (
	"os"

	"github.com/skhostel/hostelpay/internal/pkg/logger"
	"github.com/skhostel/hostelpay/internal/server"
)

// @title SK Hostel API
// @version 1.0
// @description API for the SK Hostel management service: student registration, fee payments and plan booking

// @contact.name API Support
// @contact.email support@skhostel.in

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name hostelpay_session
// @description Session cookie established by login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
