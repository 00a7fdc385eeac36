package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/barkeep/pkg/cryptox"
)

type Config struct {
	DatabaseFile  string        // Optional: path to SQLite database file (default: ./accounts.db)
	BcryptCost    int           // Optional: bcrypt work factor; higher = slower but stronger (default: 10)
	SessionTTL    time.Duration // Optional: session lifetime (default: 24h)
	SessionSecret string        // Optional: HMAC secret for session tokens; generated if unset
	Issuer        string        // Optional: issuer claim for session tokens (default: barkeep)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-session sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		DatabaseFile:         getEnvOrDefault("ACCOUNTS_DATABASE_FILE", "accounts.db"),
		BcryptCost:           getEnvIntOrDefault("ACCOUNTS_BCRYPT_COST", cryptox.DefaultCost),
		SessionTTL:           getEnvDurationOrDefault("ACCOUNTS_SESSION_TTL", 24*time.Hour),
		SessionSecret:        os.Getenv("ACCOUNTS_SESSION_SECRET"),
		Issuer:               getEnvOrDefault("ACCOUNTS_ISSUER", "barkeep"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.SessionSecret == "" {
		// Fresh secret per boot: sessions won't survive a restart, which is
		// an acceptable default outside prod deployments.
		cfg.SessionSecret = cryptox.MustGenerateToken(cryptox.TokenSize256)
	}

	return cfg
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
