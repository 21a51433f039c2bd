package app

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer         string // Issuer claim for session tokens (default: hostel-api)
	JWTSecret      string // Required in prod: HMAC secret for session tokens
	BootstrapToken string // Optional: token required to perform bootstrap

	DatabaseFile        string        // Path to SQLite database file (default: ./hostel.db)
	PepperFile          string        // Path to password pepper file (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, with a .env file in
// the working directory loaded first when present.
func LoadConfig() Config {
	// Missing .env is the normal case in deployment; env vars win either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", slog.Any("err", err))
	}

	return Config{
		Issuer:              getEnvOrDefault("HOSTEL_ISSUER", "hostel-api"),
		JWTSecret:           os.Getenv("HOSTEL_JWT_SECRET"),
		BootstrapToken:      os.Getenv("BOOTSTRAP_TOKEN"),
		DatabaseFile:        getEnvOrDefault("HOSTEL_DATABASE_FILE", "hostel.db"),
		PepperFile:          getEnvOrDefault("HOSTEL_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are taken as seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
