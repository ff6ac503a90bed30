package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	HTTPAddr      string
	ChatAPIURL    string
	ChatAPIToken  string
	ChatTimeout   time.Duration
	LogLevel      string
	EventWorkers  int
	MigrationsDir string
}

// Load reads the environment. A .env file in the working directory, when
// present, fills variables that are not already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	chatURL := os.Getenv("CHAT_API_URL")
	if chatURL == "" {
		return Config{}, fmt.Errorf("CHAT_API_URL is required")
	}

	workers, err := intEnv("EVENT_WORKERS", 4)
	if err != nil {
		return Config{}, err
	}

	timeout := 10 * time.Second
	if v := os.Getenv("CHAT_API_TIMEOUT"); v != "" {
		timeout, err = time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("CHAT_API_TIMEOUT: %w", err)
		}
	}

	return Config{
		DatabaseURL:   dbURL,
		HTTPAddr:      envDefault("HTTP_ADDR", ":8080"),
		ChatAPIURL:    chatURL,
		ChatAPIToken:  os.Getenv("CHAT_API_TOKEN"),
		ChatTimeout:   timeout,
		LogLevel:      envDefault("LOG_LEVEL", "info"),
		EventWorkers:  workers,
		MigrationsDir: envDefault("MIGRATIONS_DIR", "migrations"),
	}, nil
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return n, nil
}
