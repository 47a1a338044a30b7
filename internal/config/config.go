// Package config reads the CLI settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel     string
	LogFormat    string
	Workers      int
	OutputFormat string
}

// Load reads .env from the working directory when present, then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	workers, err := getEnvAsInt("KIDEA_WORKERS", 4)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:     getEnv("KIDEA_LOG_LEVEL", "info"),
		LogFormat:    getEnv("KIDEA_LOG_FORMAT", "text"),
		Workers:      workers,
		OutputFormat: getEnv("KIDEA_OUTPUT_FORMAT", "table"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("KIDEA_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("KIDEA_WORKERS must be at least 1, got %d", c.Workers)
	}
	switch c.OutputFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("KIDEA_OUTPUT_FORMAT must be table, json or yaml, got %q", c.OutputFormat)
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", level)
}

// NewLogger builds a text or JSON logger writing to w
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
