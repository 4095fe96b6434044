package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/LennyDevX/nuvo-f-sub002/internal/config"
	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
	"github.com/LennyDevX/nuvo-f-sub002/internal/portfolio"
	"github.com/LennyDevX/nuvo-f-sub002/internal/state"
	"github.com/LennyDevX/nuvo-f-sub002/internal/web"
)

const (
	CONSTANTS_CONFIG_NAME    = "default"
	CONSTANTS_CONFIG_VERSION = 1
)

// main is the entry point for the staking analytics service.
func main() {
	// --- 1. Initialization Phase ---
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Warning: .env file not found. Relying on OS environment variables.")
	}

	// Load configuration from environment variables
	if err := config.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Initialize(os.Getenv("LOG_LEVEL"))
	log.Info().Msg("Staking Portfolio Analytics Starting...")

	// Initialize Database Connection
	dbCfg := state.DBConfig{
		Host: config.DBHost, Port: config.DBPort,
		User: config.DBUser, Password: config.DBPassword,
		DBName: config.DBName, SSLMode: config.DBSSLMode,
	}
	if err := state.InitDB(dbCfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer state.CloseDB()
	if err := state.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	// Load Protocol Constants
	constants, err := state.LoadActiveStakingConstants(CONSTANTS_CONFIG_NAME)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load active staking constants, using defaults and saving.")
		defaults := config.DefaultStakingConstants
		if _, err := state.SaveStakingConstants(defaults, CONSTANTS_CONFIG_NAME, CONSTANTS_CONFIG_VERSION, true); err != nil {
			log.Fatal().Err(err).Msg("Failed to save initial default staking constants.")
		}
		constants = &defaults
	}
	log.Info().Msg("Staking constants loaded successfully.")

	// --- 2. Analyzer Initialization ---
	analyzerInstance, err := portfolio.NewAnalyzer(portfolio.Config{Constants: *constants})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create portfolio analyzer")
	}
	log.Info().Msg("Portfolio analyzer created successfully")

	// --- 3. Start Web Server ---
	webServer := web.NewWebServer(config.WebPort, analyzerInstance)
	log.Info().Str("port", config.WebPort).Str("url", "http://localhost:"+config.WebPort).Msg("Starting analytics API")
	if err := webServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("Web server failed")
	}
}
