// Package config loads and validates server configuration from the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the server needs to start.
type Config struct {
	Port        int
	DatabaseURL string
	RedisURL    string
	// BaseURL is the public origin used to build share links.
	BaseURL string

	JWT      JWTConfig
	Password PasswordConfig
}

// Load reads the configuration from environment variables. DATABASE_URL and
// JWT_SECRET are required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    getenvDefault("REDIS_URL", "redis://localhost:6379/0"),
		BaseURL:     strings.TrimRight(getenvDefault("BASE_URL", "http://localhost:8080"), "/"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	jwtCfg, err := NewJWTConfig()
	if err != nil {
		return nil, err
	}
	cfg.JWT = *jwtCfg

	pwCfg, err := NewPasswordConfig()
	if err != nil {
		return nil, err
	}
	cfg.Password = *pwCfg

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
