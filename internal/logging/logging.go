// Package logging builds the application's zap logger and bridges gorm's
// logger onto it.
//
// The terminal UI owns stdout, so logs go to a file unless the path is "-"
// or "stderr".
package logging

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

// New builds a JSON logger writing to path at the given level.
func New(path, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	output := path
	if output == "" || output == "-" {
		output = "stderr"
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// GormLevel parses a gorm log level name ("silent", "error", "warn", "info").
// Unknown names fall back to warn.
func GormLevel(name string) gormlogger.LogLevel {
	switch strings.ToLower(name) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// NewGormLogger returns a gorm logger that writes through z.
func NewGormLogger(z *zap.Logger, level gormlogger.LogLevel) gormlogger.Interface {
	return gormlogger.New(gormWriter{z.Sugar().Named("gorm")}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type gormWriter struct {
	s *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.s.Infof(format, args...)
}
