package database

import (
	"context"
	"fmt"
	"log"

	"bookshelf/pkg/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDSN names a shared-cache in-memory database. Its contents live as
// long as the process keeps a connection open.
const DefaultDSN = "file:bookshelf?mode=memory&cache=shared"

// OpenBooksDB opens the SQLite database behind dsn and migrates the books
// table.
func OpenBooksDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	log.Printf("Opening books database: %s", dsn)
	return initDB(dsn, &models.Book{})
}

func initDB(dsn string, models ...interface{}) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}
	// An in-memory database disappears with its last connection, so keep
	// exactly one open for good.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
