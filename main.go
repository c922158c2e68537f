package main

import (
	"log"
	"math/rand"
	"time"

	"waitwise/cmd"
	"waitwise/internal/data/state"
	"waitwise/internal/wire"
	"waitwise/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Seed the simulation; a fixed TICK_SEED gives a reproducible run
	var rng *rand.Rand
	if config.Simulation.Seed != 0 {
		rng = rand.New(rand.NewSource(config.Simulation.Seed))
	}

	store := state.NewStore(state.Config{
		InboxCapacity:    config.Inbox.Capacity,
		DefaultThreshold: config.Inbox.DefaultThreshold,
		SessionTTL:       time.Duration(config.Session.ExpiryHours) * time.Hour,
		Rand:             rng,
	}, logger)

	logger.Info("State store seeded")

	// Wire all dependencies
	app := wire.Wiring(store, config, logger)

	// Start server with the simulation ticking in the background
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger, app.Simulator.Run)
}
