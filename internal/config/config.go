// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalid reports a setting that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Import   ImportConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig holds the optional PostgreSQL connection.
type DatabaseConfig struct {
	URL string
}

// Enabled reports whether persistence is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// LogConfig selects logger level and output format.
type LogConfig struct {
	Level  string
	Format string
}

// ImportConfig bounds uploads and selects the sheet shape.
type ImportConfig struct {
	MaxUploadMB int
	Shape       string
}

// MaxUploadBytes returns the upload cap in bytes.
func (i ImportConfig) MaxUploadBytes() int64 {
	return int64(i.MaxUploadMB) << 20
}

// Load reads configuration from the environment, after applying the given
// env files (default ".env") when they exist. Variables already set win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Server:   ServerConfig{Addr: getEnvOrDefault("HTTP_ADDR", ":3001")},
		Database: DatabaseConfig{URL: os.Getenv("DATABASE_URL")},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		},
		Import: ImportConfig{
			MaxUploadMB: getEnvIntOrDefault("MAX_UPLOAD_MB", 50),
			Shape:       strings.ToLower(getEnvOrDefault("IMPORT_SHAPE", "auto")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that Load cannot default away.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: LOG_FORMAT %q (must be text or json)", ErrInvalid, c.Log.Format)
	}
	switch c.Import.Shape {
	case "auto", "keyed", "positional":
	default:
		return fmt.Errorf("%w: IMPORT_SHAPE %q (must be auto, keyed or positional)", ErrInvalid, c.Import.Shape)
	}
	if c.Import.MaxUploadMB <= 0 {
		return fmt.Errorf("%w: MAX_UPLOAD_MB must be positive", ErrInvalid)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
