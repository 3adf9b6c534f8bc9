package main

import (
	"context"
	"log"
	"os"

	"ecommerce-catalog/cmd"
	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/internal/wire"
	"ecommerce-catalog/pkg/database"
	"ecommerce-catalog/pkg/mailer"
	"ecommerce-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
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

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	ctx := context.Background()

	if config.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	sender, err := mailer.New(config.Email, logger)
	if err != nil {
		logger.Fatal("Failed to configure mailer", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, config, sender, logger)

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := cmd.Seed(ctx, app.Service.Seed, logger); err != nil {
			logger.Fatal("Seeding failed", zap.Error(err))
		}
		return
	}

	if _, err := app.Service.Auth.PurgeExpiredSessions(ctx); err != nil {
		logger.Warn("Failed to purge expired sessions", zap.Error(err))
	}

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
