// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// EconomyConfig holds all configuration for the economy service
type EconomyConfig struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Wallet     WalletConfig
	RepoType   string // memory or db
	DailyStore string // redis or db, used when RepoType is db
	Games      []GameConfig
}

// LoadEconomyConfig loads the full configuration for the economy service
func LoadEconomyConfig() *EconomyConfig {
	return &EconomyConfig{
		Server: ServerConfig{
			HTTPPort: getEnv("ECONOMY_HTTP_PORT", "8080"),
			Name:     "economy-service",
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "economy_user"),
			Password: getEnv("DB_PASSWORD", "economy_pass"),
			Name:     getEnv("DB_NAME", "economy_db"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Wallet: WalletConfig{
			OwnerID:       getEnv("OWNER_ID", "owner_temp"),
			MinBet:        int64(getEnvInt("MIN_BET", 10)),
			MinGiftAmount: int64(getEnvInt("MIN_GIFT_AMOUNT", 10)),
		},
		RepoType:   getEnv("ECONOMY_REPO_TYPE", "memory"),
		DailyStore: getEnv("ECONOMY_DAILY_STORE", "redis"),
		Games:      DefaultGames(),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
