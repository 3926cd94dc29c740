package cli

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mrlokans/shelf/internal/config"
	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/logging"
)

// App holds what every subcommand needs. The database is opened lazily so
// that help output never touches the catalog file.
type App struct {
	Config  *config.Config
	Version string

	logger *zap.Logger
	db     *database.Database
}

func NewApp(cfg *config.Config, version string) *App {
	return &App{Config: cfg, Version: version}
}

// Logger returns the application logger, building it on first use.
func (a *App) Logger() (*zap.Logger, error) {
	if a.logger != nil {
		return a.logger, nil
	}
	logger, err := logging.New(a.Config.Log.File, a.Config.Log.Level)
	if err != nil {
		return nil, err
	}
	a.logger = logger.With(zap.String("version", a.Version))
	return a.logger, nil
}

// Database opens the catalog configured in Config.Database.Path.
func (a *App) Database() (*database.Database, error) {
	if a.db != nil {
		return a.db, nil
	}
	logger, err := a.Logger()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(a.Config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absPath,
		database.WithLogger(logger),
		database.WithLogLevel(logging.GormLevel(a.Config.Database.LogLevel)))
	if err != nil {
		logger.Error("Failed to open catalog", zap.String("path", absPath), zap.Error(err))
		return nil, err
	}
	a.db = db
	return db, nil
}

// Close releases the database and flushes logs.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil && a.logger != nil {
			a.logger.Warn("Failed to close database", zap.Error(err))
		}
		a.db = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
