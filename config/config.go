package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application, populated from
// environment variables.
type Config struct {
	// Server
	ServerPort string

	// Identity database (Postgres)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis (KV store + rate limiting)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Identity gateway
	JWTSecret string

	// Image storage
	S3Bucket string
	S3Region string
}

// Load builds the configuration from the environment and validates it.
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getenv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB must be an integer: %w", err)
	}

	cfg := &Config{
		ServerPort: getenv("SERVER_PORT", "8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "recetario"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "recetario"),
		DBSSLMode:  getenv("DB_SSL_MODE", "disable"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		RedisURL:      os.Getenv("REDIS_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		S3Bucket: os.Getenv("S3_BUCKET"),
		S3Region: getenv("S3_REGION", "us-east-1"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
