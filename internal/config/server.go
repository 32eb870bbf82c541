package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults for server settings.
const (
	DefaultPort           = 8080
	DefaultMaxUploadBytes = 10 << 20
	DefaultCORSOrigin     = "http://localhost:3000"
)

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	Port           int
	DatabaseURL    string
	MaxUploadBytes int64
	CORSOrigin     string
}

// NewServerConfig creates a server configuration from environment variables.
// It reads PORT (default 8080), DATABASE_URL (optional), MAX_UPLOAD_BYTES
// (default 10 MiB) and CORS_ALLOWED_ORIGIN (default http://localhost:3000).
func NewServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:           DefaultPort,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MaxUploadBytes: DefaultMaxUploadBytes,
		CORSOrigin:     DefaultCORSOrigin,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %v", err)
		}
		cfg.MaxUploadBytes = size
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got: %d", c.Port)
	}
	if c.MaxUploadBytes < 1 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got: %d", c.MaxUploadBytes)
	}
	return nil
}
