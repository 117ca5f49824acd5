package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr string

	// DBDriver is "sqlite" or "postgres"; DBDSN is the file path or
	// connection string for it.
	DBDriver string
	DBDSN    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret string
	SessionTTL    time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:      GetEnvAsString("HTTP_ADDR", ":8080"),
		DBDriver:      GetEnvAsString("DB_DRIVER", "sqlite"),
		DBDSN:         GetEnvAsString("DB_DSN", "todos.db"),
		RedisAddr:     GetEnvAsString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    GetEnvAsDuration("SESSION_TTL", 24*time.Hour),
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET env variable is missing")
	}
	return cfg, nil
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
