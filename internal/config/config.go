package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds process settings read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	SeedPath    string
	CitiesPath  string
	RedisURL    string
	Capacity    int
	RateLimit   float64
	RateBurst   int
	LogLevel    string
	Environment string
}

// Load reads an optional .env file, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found (using environment variables)")
	}

	return Config{
		Port:        Get("PORT", "8080"),
		DatabaseURL: Get("DATABASE_URL", Get("DB_PATH", "data/app.db")),
		SeedPath:    Get("SEED_PATH", "data/seeds/packages.json"),
		CitiesPath:  Get("CITIES_PATH", "data/cities.yaml"),
		RedisURL:    Get("REDIS_URL", ""),
		Capacity:    GetInt("CAPACITY", 0),
		RateLimit:   GetFloat("RATE_LIMIT", 20),
		RateBurst:   GetInt("RATE_BURST", 40),
		LogLevel:    Get("LOG_LEVEL", "info"),
		Environment: Get("ENVIRONMENT", "development"),
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer setting, using default")
		return fallback
	}
	return n
}

func GetFloat(key string, fallback float64) float64 {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid number setting, using default")
		return fallback
	}
	return f
}
