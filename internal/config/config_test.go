package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	// t.Setenv restores the previous values; unset so .env can fill them
	for _, k := range []string{"KIDEA_LOG_LEVEL", "KIDEA_LOG_FORMAT", "KIDEA_WORKERS", "KIDEA_OUTPUT_FORMAT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "info", LogFormat: "text", Workers: 4, OutputFormat: "table"}, cfg)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("KIDEA_LOG_LEVEL", "debug")
	t.Setenv("KIDEA_WORKERS", "8")
	t.Setenv("KIDEA_OUTPUT_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("KIDEA_LOG_FORMAT=json\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"KIDEA_LOG_LEVEL":     "loud",
		"KIDEA_LOG_FORMAT":    "xml",
		"KIDEA_WORKERS":       "0",
		"KIDEA_OUTPUT_FORMAT": "csv",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}

	t.Run("workers not a number", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KIDEA_WORKERS", "many")
		_, err := Load()
		assert.ErrorContains(t, err, "KIDEA_WORKERS")
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn", "json")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "joint", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"joint":3`)

	_, err = NewLogger(&buf, "info", "xml")
	assert.Error(t, err)
	_, err = NewLogger(&buf, "loud", "text")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}
