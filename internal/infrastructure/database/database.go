package database

import (
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/infrastructure/snapshot"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens Postgres when dsn is set and the SQLite file at sqlitePath otherwise.
// PreferSimpleProtocol disables prepared statement caching to avoid 42P05
// ("prepared statement already exists") behind connection poolers such as PgBouncer.
func Open(dsn, sqlitePath string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if dsn != "" {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
	}
	db, err := gorm.Open(sqlite.Open(sqlitePath), cfg)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer at a time.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// AutoMigrate creates the listings and snapshots tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Listing{}, &snapshot.Snapshot{})
}
