package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort            string
	StoreBackend        string
	DataDir             string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	JWTSecret           string
	IdentityBaseURL     string
	IdentityInternalKey string
	RequestTimeout      time.Duration
	ApplyRateLimit      int
	ApplyRateWindow     time.Duration
	SeedSampleData      bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		StoreBackend:        getEnv("STORE_BACKEND", "file"),
		DataDir:             getEnv("DATA_DIR", "data"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getInt("REDIS_DB", 0),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		IdentityBaseURL:     getEnv("IDENTITY_BASE_URL", ""),
		IdentityInternalKey: getEnv("IDENTITY_INTERNAL_KEY", ""),
		RequestTimeout:      getDuration("REQUEST_TIMEOUT", 10*time.Second),
		ApplyRateLimit:      getInt("APPLY_RATE_LIMIT", 5),
		ApplyRateWindow:     getDuration("APPLY_RATE_WINDOW", time.Minute),
		SeedSampleData:      getBool("SEED_SAMPLE_DATA", false),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.StoreBackend != "file" && cfg.StoreBackend != "redis" {
		log.Fatalf("unknown STORE_BACKEND %q, must be file or redis", cfg.StoreBackend)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
