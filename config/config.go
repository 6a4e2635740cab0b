package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	App       AppConfig
	Algorithm AlgorithmConfig
	Data      DataConfig
	Cache     CacheConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// AlgorithmConfig holds the default engine parameters applied when a
// request does not override them.
type AlgorithmConfig struct {
	DampingFactor        float64
	MaxIterations        int
	ConvergenceThreshold float64
}

type DataConfig struct {
	Dir string
}

type CacheConfig struct {
	TTL time.Duration
	// WarmSchedule is a cron spec (with seconds) for precomputing
	// default rankings; empty disables the warmer.
	WarmSchedule string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 20),
			RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 40),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Algorithm: AlgorithmConfig{
			DampingFactor:        getEnvAsFloat("PAGERANK_DAMPING_FACTOR", 0.85),
			MaxIterations:        getEnvAsInt("RANK_MAX_ITERATIONS", 100),
			ConvergenceThreshold: getEnvAsFloat("RANK_CONVERGENCE_THRESHOLD", 0.0001),
		},
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "data"),
		},
		Cache: CacheConfig{
			TTL:          getEnvAsDuration("CACHE_TTL", 24*time.Hour),
			WarmSchedule: getEnv("CACHE_WARM_SCHEDULE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Algorithm.DampingFactor <= 0 || c.Algorithm.DampingFactor >= 1 {
		return fmt.Errorf("PAGERANK_DAMPING_FACTOR must be in (0, 1)")
	}
	if c.Algorithm.MaxIterations <= 0 {
		return fmt.Errorf("RANK_MAX_ITERATIONS must be positive")
	}
	if c.Algorithm.ConvergenceThreshold <= 0 {
		return fmt.Errorf("RANK_CONVERGENCE_THRESHOLD must be positive")
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
