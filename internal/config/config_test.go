package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_PATH", "DB_LOG_LEVEL", "LOG_FILE", "LOG_LEVEL", "SAMPLE_COUNT"} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.Equal(t, DefaultLogFile, cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Sample.Count)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/catalog.db")
	t.Setenv("DB_LOG_LEVEL", "info")
	t.Setenv("LOG_FILE", "-")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SAMPLE_COUNT", "12")

	cfg := NewConfig()

	assert.Equal(t, "/tmp/catalog.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Database.LogLevel)
	assert.Equal(t, "-", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 12, cfg.Sample.Count)
}

func TestNewConfig_NonPositiveSampleCount(t *testing.T) {
	t.Setenv("SAMPLE_COUNT", "0")

	assert.Equal(t, 50, NewConfig().Sample.Count)
}
