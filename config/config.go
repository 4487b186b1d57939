package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/database"
)

type Config struct {
	Port string
	DB   database.Config

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	AccessTTL   time.Duration
	BcryptCost  int

	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port: getEnv("APP_PORT", log),
		DB: database.Config{
			Host:     getEnv("DB_HOST", log),
			Port:     getEnv("DB_PORT", log),
			User:     getEnv("DB_USER", log),
			Password: getEnv("DB_PASSWORD", log),
			Name:     getEnv("DB_NAME", log),
			SSLMode:  getEnv("DB_SSLMODE", log),
		},

		JWTSecret:   getEnv("JWT_SECRET", log),
		JWTIssuer:   envDefault("JWT_ISSUER", "visualart-api"),
		JWTAudience: envDefault("JWT_AUDIENCE", "visualart"),
		AccessTTL:   time.Duration(cast.ToInt(envDefault("ACCESS_TTL_MINUTES", "60"))) * time.Minute,
		BcryptCost:  cast.ToInt(envDefault("BCRYPT_COST", "10")),

		KafkaEnabled: cast.ToBool(os.Getenv("KAFKA_ENABLED")),
		KafkaBrokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   envDefault("KAFKA_TOPIC_ORDERS", "orders.events"),
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func envDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
