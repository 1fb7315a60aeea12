// Package database provides database connection management for PostgreSQL and SQLite.
package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/team_generator/internal/database/config"
	"github.com/festy23/team_generator/internal/database/pool"
	"github.com/festy23/team_generator/pkg/retry"
)

const connectTimeout = 2 * time.Minute

// New creates a new database connection using environment variables.
func New(logger *zap.SugaredLogger) (*gorm.DB, error) {
	return NewWithConfig(config.LoadConfigFromEnv(), logger)
}

// NewWithConfig creates a new database connection with custom configuration.
func NewWithConfig(cfg config.Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	if cfg.IsSQLite() {
		return openSQLite(cfg, logger)
	}
	return openPostgres(cfg, logger)
}

func openSQLite(cfg config.Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := applyPool(db, pool.SQLitePoolConfig()); err != nil {
		return nil, err
	}

	logger.Infow("connected to database", "driver", cfg.Driver, "path", cfg.SQLitePath)
	return db, nil
}

func openPostgres(cfg config.Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	retryCfg := config.LoadRetryConfigFromEnv()
	retryCfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		logger.Warnw("database connection failed, retrying",
			"attempt", attempt,
			"delay", delay,
			"error", config.SanitizeError(err, cfg),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	dsn := config.BuildDSN(cfg)
	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := applyPool(db, pool.LoadPoolConfigFromEnv(pool.DefaultPoolConfig())); err != nil {
		return nil, err
	}

	logger.Infow("connected to database", "driver", cfg.Driver, "host", cfg.Host, "dbname", cfg.DBName)
	return db, nil
}

// applyPool configures the pool of a freshly opened db and closes db if that fails.
func applyPool(db *gorm.DB, poolCfg pool.Config) error {
	if err := pool.SetupConnectionPool(db, poolCfg); err != nil {
		if closeErr := Close(db); closeErr != nil {
			return fmt.Errorf("failed to setup connection pool: %w (close: %v)", err, closeErr)
		}
		return fmt.Errorf("failed to setup connection pool: %w", err)
	}
	return nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close gracefully closes database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
