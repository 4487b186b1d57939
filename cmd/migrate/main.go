package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/visualart-comunicacao/sitemas-visualArt2/config"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/database"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/logger"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/migrate"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB, log)
	defer database.CloseDB(db, log)

	if err := migrate.Migrate(context.Background(), db, log, migrate.DefaultOptions()); err != nil {
		os.Exit(1)
	}
}
