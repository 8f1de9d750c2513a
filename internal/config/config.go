package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDriver string // sqlite or postgres
	DatabaseURL    string
	RedisURL       string
	ServerPort     string
	CacheTTL       int // seconds
	SweepInterval  int // minutes; 0 disables the background overdue sweep
	LogLevel       string
	SeedData       bool
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseURL:    getEnv("DATABASE_URL", "industritrack.db"),
		RedisURL:       getEnv("REDIS_URL", ""),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		CacheTTL:       getEnvAsInt("CACHE_TTL", 60),
		SweepInterval:  getEnvAsInt("SWEEP_INTERVAL", 60),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SeedData:       getEnvAsBool("SEED_DATA", true),
	}
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
