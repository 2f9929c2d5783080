package main

import (
	"log/slog"
	"os"

	"scholarhub/config"
	"scholarhub/controllers"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := controllers.MigrateModels(db); err != nil {
		slog.Error("failed to migrate models", "error", err)
		os.Exit(1)
	}

	handler := controllers.New(db, controllers.StripeProvider{Key: cfg.StripeSecretKey}, []byte(cfg.AccessTokenKey))
	router := controllers.SetupRouter(handler, db)

	slog.Info("server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
