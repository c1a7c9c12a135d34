package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coastalrealty/coastal-api/internal/config"
)

// Database wraps the GORM handle and provides connection lifecycle helpers.
type Database struct {
	Gorm *gorm.DB
}

// NewPostgres opens a PostgreSQL connection through GORM, tunes the
// underlying pool from the provided configuration, and verifies the
// connection with a ping before returning.
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	// Pool tuning
	sqlDB.SetMaxIdleConns(cfg.PoolMin)
	sqlDB.SetMaxOpenConns(cfg.PoolMax)
	sqlDB.SetConnMaxIdleTime(30 * time.Second)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	// Test the connection immediately
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{Gorm: gdb}, nil
}

// Ping checks if the database connection is alive.
func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close gracefully closes the connection pool.
func (db *Database) Close() {
	if db.Gorm == nil {
		return
	}
	if sqlDB, err := db.Gorm.DB(); err == nil {
		sqlDB.Close()
	}
}

// Stats returns statistics about the connection pool. Useful for
// monitoring and debugging.
func (db *Database) Stats() *sql.DBStats {
	if db.Gorm == nil {
		return nil
	}
	sqlDB, err := db.Gorm.DB()
	if err != nil {
		return nil
	}
	stats := sqlDB.Stats()
	return &stats
}
