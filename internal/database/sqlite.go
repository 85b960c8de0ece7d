package database

import (
	"fmt"
	"log"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var (
	db   *sqlx.DB
	once sync.Once
)

// Config holds database configuration
type Config struct {
	Path string
}

// Init initializes the database connection and applies the schema
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		db, err = sqlx.Connect("sqlite", cfg.Path)
		if err != nil {
			err = fmt.Errorf("failed to open database: %w", err)
			return
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)

		// Enable WAL mode for better concurrency
		if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			err = fmt.Errorf("failed to enable WAL: %w", err)
			return
		}

		if err = Migrate(db); err != nil {
			return
		}

		log.Printf("[Database] Initialized: %s", cfg.Path)
	})

	return err
}

// GetDB returns the database instance
func GetDB() *sqlx.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call Init() first.")
	}
	return db
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
