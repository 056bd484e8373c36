package infra

import (
	"fmt"
	"strings"
	"time"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/config"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the connection pool for the configured driver, then creates
// or updates the schema. The returned handle is safe for concurrent use and is
// meant to live as long as the process.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := openDialector(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(cfg.LogLevel),
		// Constraint violations come back as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// RunMigrations creates the four invoicing tables with their unique and
// foreign-key constraints. It is idempotent.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(model.All()...)
}

func openDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "", "postgres", "postgresql":
		return postgres.Open(dsn), nil
	case "sqlite", "sqlite3":
		return sqlite.Open(SQLiteDSN(dsn)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// SQLiteDSN makes sure foreign keys are enforced on every pooled connection;
// SQLite leaves them off unless asked.
func SQLiteDSN(dsn string) string {
	s := strings.TrimSpace(dsn)
	lower := strings.ToLower(s)
	if strings.Contains(lower, "_foreign_keys=") || strings.Contains(lower, "_fk=") {
		return s
	}
	if strings.Contains(s, "?") {
		return s + "&_foreign_keys=on"
	}
	return s + "?_foreign_keys=on"
}

// newGormLogger routes GORM's SQL log through zerolog. SQL tracing is only
// enabled at debug level; otherwise only errors are reported.
func newGormLogger(level string) logger.Interface {
	lvl := logger.Error
	if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && parsed <= zerolog.DebugLevel {
		lvl = logger.Info
	}
	return logger.New(gormWriter{}, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	log.Debug().Str("component", "gorm").Msgf(format, args...)
}
