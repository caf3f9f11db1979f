package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           string
	Env            string
	PostgresURL    string
	JWTSecret      string
	JWTExpiryHours int
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		PostgresURL:    getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:      getEnv("JWT_SECRET", "supersecretjwtkey"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 72),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
