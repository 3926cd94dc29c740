package config

import (
	"github.com/spf13/viper"

	"github.com/mrlokans/shelf/internal/demo"
)

type (
	Config struct {
		Database
		Log
		Sample
	}

	Database struct {
		Path     string
		LogLevel string // gorm statement logging: silent, error, warn, info
	}
	Log struct {
		File  string // "-" logs to stderr
		Level string
	}
	Sample struct {
		Count int // Records added by one "Add Sample Books" action
	}
)

// NewConfig reads configuration from the environment.
func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("db_log_level", "warn")
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_level", "info")
	v.SetDefault("sample_count", demo.DefaultSampleCount)

	cfg := &Config{
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DB_LOG_LEVEL"),
		},
		Log: Log{
			File:  v.GetString("LOG_FILE"),
			Level: v.GetString("LOG_LEVEL"),
		},
		Sample: Sample{
			Count: v.GetInt("SAMPLE_COUNT"),
		},
	}
	if cfg.Sample.Count <= 0 {
		cfg.Sample.Count = demo.DefaultSampleCount
	}
	return cfg
}
