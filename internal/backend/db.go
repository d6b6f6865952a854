package backend

import (
	"context"
	"fmt"
	"time"

	"late-rooms/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// OpenDB connects to the backend's Postgres. The schema (tables, read-model
// views, bid triggers) belongs to the backend and is never migrated from here.
func OpenDB(ctx context.Context, dsn string) (*gorm.DB, error) {
	gormLogger := logger.New(log.StandardLogger(), logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	var (
		db  *gorm.DB
		err error
	)
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
		if err == nil {
			err = ping(ctx, db)
		}
		if err == nil {
			break
		}

		utils.Warn("database not ready", map[string]any{
			"attempt": attempt,
			"error":   err.Error(),
		})
		if attempt == connectAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("backend: connect: %w", ctx.Err())
		case <-time.After(connectBackoff):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("backend: connect after %d attempts: %w", connectAttempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("backend: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	utils.Info("database connected", nil)
	return db, nil
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CloseDB releases the connection pool
func CloseDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
