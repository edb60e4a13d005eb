package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"orgtracker/internal/auth"
	"orgtracker/internal/config"
	"orgtracker/internal/database"
	"orgtracker/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Logging.Development); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open store", err, zap.String("path", cfg.Database.Path))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to provision schema", err)
	}

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err := database.Seed(db, hasher); err != nil {
		logger.Fatal("Failed to seed demo data", err)
	}

	logger.Info("Store ready", zap.String("path", cfg.Database.Path))
	for _, acc := range database.DemoAccounts() {
		logger.Info("Demo account",
			zap.String("username", acc.Username),
			zap.String("role", string(acc.Role)),
		)
	}
}
