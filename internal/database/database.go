package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"kobis-search/internal/config"
	"kobis-search/internal/models"
	"kobis-search/internal/query"

	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

// ErrUnsupportedEncoding is returned by Connect when a postgres server does
// not store text as UTF8. Title bucketing reads code points through ASCII(),
// which only returns them on UTF8 databases.
var ErrUnsupportedEncoding = errors.New("catalog store must use UTF8 encoding")

type Database struct {
	*gorm.DB
	config  config.DatabaseConfig
	dialect query.Dialect
}

func Connect(cfg config.DatabaseConfig) (*Database, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt:                              true, // Enable prepared statement cache
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = gormlite.Open(cfg.DSN())
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if db.Dialector.Name() == query.Postgres.Name() {
		if err := checkServerEncoding(ctx, db); err != nil {
			logrus.WithError(err).Error("Refusing database with unsupported encoding")
			return nil, err
		}
	}

	logrus.WithField("driver", db.Dialector.Name()).Info("Database connection established successfully")

	database := &Database{
		DB:      db,
		config:  cfg,
		dialect: query.DialectFor(db.Dialector.Name()),
	}

	if cfg.AutoMigrate {
		if err := autoMigrate(db); err != nil {
			logrus.WithError(err).Error("Failed to run auto migration")
			return nil, fmt.Errorf("failed to run auto migration: %w", err)
		}
	}

	return database, nil
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

// Dialect returns the SQL dialect of the connected store.
func (d *Database) Dialect() query.Dialect {
	return d.dialect
}

// SnapshotTxOptions returns the options for read transactions whose
// statements must all observe the same data. Postgres needs REPEATABLE READ
// for that; SQLite transactions are serializable already.
func (d *Database) SnapshotTxOptions() *sql.TxOptions {
	return snapshotTxOptions(d.dialect)
}

func snapshotTxOptions(dialect query.Dialect) *sql.TxOptions {
	if dialect.Name() == query.SQLite.Name() {
		return &sql.TxOptions{}
	}
	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
}

func checkServerEncoding(ctx context.Context, db *gorm.DB) error {
	var encoding string
	if err := db.WithContext(ctx).Raw("SELECT current_setting('server_encoding')").Scan(&encoding).Error; err != nil {
		return fmt.Errorf("failed to read server encoding: %w", err)
	}
	return validateEncoding(encoding)
}

func validateEncoding(encoding string) error {
	switch strings.ToUpper(strings.ReplaceAll(encoding, "-", "")) {
	case "UTF8", "UNICODE":
		return nil
	}
	return fmt.Errorf("%w: server_encoding is %q", ErrUnsupportedEncoding, encoding)
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func autoMigrate(db *gorm.DB) error {
	logrus.Info("Running auto migration...")

	err := db.AutoMigrate(
		&models.Director{},
		&models.ProductionCompany{},
		&models.Genre{},
		&models.Country{},
		&models.Movie{},
		&models.MovieGenre{},
		&models.MovieCountry{},
	)

	if err != nil {
		return err
	}

	logrus.Info("Auto migration completed successfully")
	return nil
}
