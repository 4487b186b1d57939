package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/visualart-comunicacao/sitemas-visualArt2/config"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/database"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/events"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/hashing"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/logger"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/repository"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/token"
	transport "github.com/visualart-comunicacao/sitemas-visualArt2/internal/transport/http"
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

	repos := repository.New(db)

	// Event bus is optional (nil disables publishing)
	var bus service.EventBus
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) > 0 {
		kb := events.NewKafkaBus(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		defer kb.Close()
		bus = kb
	}

	tokens := token.NewHSProvider(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	hasher := hashing.NewBcrypt(cfg.BcryptCost)

	sign := func(u *models.User, ttl time.Duration) (string, time.Time, error) {
		return tokens.Sign(u.ID, string(u.Role), ttl)
	}

	authSvc := service.NewAuthService(repos.Users, hasher, sign, cfg.AccessTTL, log)
	productSvc := service.NewProductService(repos, log)
	orderSvc := service.NewOrderService(repos, bus, log)
	quoteSvc := service.NewQuoteService(repos, bus, log)

	srv := transport.NewServer(log, tokens, authSvc, productSvc, orderSvc, quoteSvc)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := srv.Start(":" + cfg.Port); err != nil {
			log.Warn("HTTP server stopped", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("HTTP server stopped gracefully")
}
