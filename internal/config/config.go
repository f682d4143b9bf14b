// Package config provides configuration management for the greeter service.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host              string
	Port              string
	Debug             bool          // Enables gin debug mode for local development
	ShutdownTimeout   time.Duration // Budget for draining in-flight requests
	ReadHeaderTimeout time.Duration
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	Limit  int64 // Requests allowed per period; 0 disables limiting
	Period time.Duration
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // zerolog level name
	Format string // "json" or "console"
}

// Log formats accepted by LogConfig.Format.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:              os.Getenv("HOST"),
			Port:              getEnv("PORT", "5000"),
			Debug:             getEnvAsBool("APP_DEBUG", false),
			ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", "10s"),
			ReadHeaderTimeout: getEnvAsDuration("READ_HEADER_TIMEOUT", "5s"),
		},
		RateLimit: RateLimitConfig{
			Limit:  int64(getEnvAsInt("RATE_LIMIT", 0)),
			Period: getEnvAsDuration("RATE_LIMIT_PERIOD", "1m"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", LogFormatJSON),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 0 and 65535, got %q", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.RateLimit.Limit < 0 {
		return errors.New("RATE_LIMIT must not be negative")
	}
	if c.RateLimit.Limit > 0 && c.RateLimit.Period <= 0 {
		return errors.New("RATE_LIMIT_PERIOD must be positive when RATE_LIMIT is set")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.Log.Level, err)
	}
	if c.Log.Format != LogFormatJSON && c.Log.Format != LogFormatConsole {
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatJSON, LogFormatConsole, c.Log.Format)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		defaultDuration, _ := time.ParseDuration(defaultValue)
		return defaultDuration
	}
	return value
}

// getEnvAsList splits a comma separated environment variable, dropping empty entries
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
