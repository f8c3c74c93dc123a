package main

import (
	"context"
	"log"

	"github.com/PlayLink-CC/playlink-sub000/cmd"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/wire"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

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
		zap.String("upstream", config.Upstream.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize the marketplace upstream client
	client := remote.NewClient(config.Upstream, logger)
	rmt := remote.NewRemote(client, logger)

	// Wire all dependencies
	app := wire.Wiring(rmt, config, logger)

	// Expire abandoned wizard drafts in the background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.Service.Wizard.StartJanitor(ctx)

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
