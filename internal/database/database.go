package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrlokans/shelf/internal/database/books"
	"github.com/mrlokans/shelf/internal/entities"
	"github.com/mrlokans/shelf/internal/logging"
)

// Database owns the single connection to the catalog file.
type Database struct {
	DB     *gorm.DB
	logger *zap.Logger
}

type options struct {
	logger   *zap.Logger
	logLevel gormlogger.LogLevel
}

// Option configures NewDatabase.
type Option func(*options)

// WithLogger routes database and gorm logs through logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithLogLevel sets the gorm statement log level.
func WithLogLevel(level gormlogger.LogLevel) Option {
	return func(o *options) { o.logLevel = level }
}

// NewDatabase opens or creates the catalog at dbPath and makes sure the
// books table exists. Calling it against an existing file leaves stored
// records untouched. Failures wrap books.ErrStorageUnavailable.
func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	o := options{logger: zap.NewNop(), logLevel: gormlogger.Warn}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logging.NewGormLogger(o.logger, o.logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w: %w", dbPath, books.ErrStorageUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w: %w", books.ErrStorageUnavailable, err)
	}
	// One connection for the process lifetime.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database %s: %w: %w", dbPath, books.ErrStorageUnavailable, err)
	}

	o.logger.Info("Database initialized", zap.String("path", dbPath))

	return &Database{DB: db, logger: o.logger}, nil
}

// Books returns a repository bound to this database.
func (d *Database) Books() *books.Repository {
	return books.NewRepository(d.DB)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	d.logger.Debug("Closing database")
	return sqlDB.Close()
}
