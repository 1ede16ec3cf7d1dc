package infra

import (
	"context"
	"fmt"
	"strings"

	"personas/internal/config"
	"personas/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection with the configured driver
// (postgres on pgx, or pure-Go sqlite), applies pool limits and verifies
// connectivity. Schema creation is a separate step, see EnsureSchema.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(parseLogLevel(cfg.DBLogLevel)),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	if err := Ping(context.Background(), db); err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.DBDriver, err)
	}
	return db, nil
}

// EnsureSchema creates the personas and paises tables when they are absent.
// It is idempotent and must run once before the server accepts requests.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Persona{}, &model.Pais{}); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return nil
}

// Ping checks that the underlying connection pool can reach the database.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("driver de base de datos desconocido: %q", driver)
	}
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}
