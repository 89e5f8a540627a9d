package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wonderhood/web/internal/locks"
	"github.com/wonderhood/web/internal/session"
)

var conn *gorm.DB

// Init opens the local store. It holds only browser-profile state, session
// records and volunteer submission locks. Every domain entity lives behind
// the backend API and is never persisted here.
func Init(path string) error {
	var err error
	conn, err = gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&session.Record{},
		&locks.Record{},
	); err != nil {
		return err
	}
	return nil
}

func Conn() *gorm.DB {
	return conn
}
