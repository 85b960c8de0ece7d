package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema holds the table definitions in creation order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS incidents (
		id TEXT NOT NULL,
		type TEXT NOT NULL,
		date TEXT NOT NULL,
		year INTEGER NOT NULL,
		month TEXT NOT NULL,
		day_nr TEXT NOT NULL,
		week_nr TEXT NOT NULL,
		day_name TEXT NOT NULL,
		hour TEXT NOT NULL,
		priority INTEGER,
		zone_id TEXT NOT NULL,
		x REAL,
		y REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_incidents_type ON incidents(type)`,
	`CREATE INDEX IF NOT EXISTS idx_incidents_zone ON incidents(zone_id)`,
	`CREATE TABLE IF NOT EXISTS zones (
		id TEXT PRIMARY KEY,
		ring TEXT NOT NULL,
		lonlat_ring TEXT NOT NULL,
		centroid_lon REAL NOT NULL,
		centroid_lat REAL NOT NULL,
		area_km2 REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS import_runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		incidents INTEGER NOT NULL,
		zones INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Migrate applies the schema statements.
func Migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
