package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"go-inspecta/internal/shared/connection"
)

type Config struct {
	Port               string
	AppEnv             string
	Postgres           connection.PostgresConfig
	RedisAddr          string
	JWTSecret          string
	SessionTTL         time.Duration
	KafkaBroker        string
	KafkaGroupID       string
	OutboxPollInterval time.Duration
	ConnectRetries     int
}

// Load reads .env when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),
		Postgres: connection.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "inspecta"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		SessionTTL:         getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		KafkaBroker:        os.Getenv("KAFKA_BROKER"),
		KafkaGroupID:       getEnv("KAFKA_GROUP_ID", "go-inspecta-audit"),
		OutboxPollInterval: getEnvAsDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		ConnectRetries:     getEnvAsInt("CONNECT_RETRIES", 5),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("15m") or plain seconds ("900").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
