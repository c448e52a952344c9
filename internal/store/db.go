// internal/store/db.go
package store

import (
	"log/slog"
	"os"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB はローカルストア用のsqlite接続を開きます。
// path に ":memory:" を渡すとインメモリDBになります（テスト用）。
func NewDB(path string, appLogger *slog.Logger) (*gorm.DB, error) {
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	// GORMのログをslogに流す
	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)
	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: finalGormLogger,
	})
	if err != nil {
		appLogger.Error("Failed to open local store with GORM", slog.Any("error", err))
		return nil, err
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		appLogger.Error("Failed to migrate local store schema", slog.Any("error", err))
		return nil, err
	}

	appLogger.Info("Local store opened", slog.String("path", path))
	return db, nil
}
