package config

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DatabaseConfig describes the embedded SQLite database backing the table
// store. Everything lives in one local file; WAL keeps single-batch writes
// atomic and durable across restarts.
type DatabaseConfig struct {
	Path string
}

func getDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Path: getEnvWithDefault("SQLITE_PATH", "admin.db"),
	}
}

func (c *DatabaseConfig) buildDSN() string {
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", c.Path)
}

// NewDatabase opens the embedded database. TranslateError is on so the
// store layer sees gorm.ErrDuplicatedKey instead of raw SQLite codes.
func NewDatabase() (*gorm.DB, error) {
	return openDatabase(getDatabaseConfig())
}

// NewMemoryDatabase opens a private in-memory database, used by tests.
func NewMemoryDatabase() (*gorm.DB, error) {
	return openDatabase(&DatabaseConfig{Path: ":memory:"})
}

func openDatabase(config *DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(config.buildDSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", config.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// CloseDatabase closes the underlying connection.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
