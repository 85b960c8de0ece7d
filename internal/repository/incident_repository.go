package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/tvdheuvel/incidents-backend-go/internal/models"
)

// IncidentStore persists the normalized incident and zone tables.
type IncidentStore struct {
	db *sqlx.DB
}

// NewIncidentStore creates a new incident store
func NewIncidentStore(db *sqlx.DB) *IncidentStore {
	return &IncidentStore{db: db}
}

// ReplaceAll swaps the stored dataset for the given one inside a
// single transaction.
func (s *IncidentStore) ReplaceAll(incidents []models.Incident, zones []models.Zone) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM incidents"); err != nil {
		return fmt.Errorf("failed to clear incidents: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM zones"); err != nil {
		return fmt.Errorf("failed to clear zones: %w", err)
	}

	insertIncident := `
		INSERT INTO incidents (id, type, date, year, month, day_nr, week_nr, day_name, hour, priority, zone_id, x, y)
		VALUES (:id, :type, :date, :year, :month, :day_nr, :week_nr, :day_name, :hour, :priority, :zone_id, :x, :y)
	`
	for i := range incidents {
		if _, err := tx.NamedExec(insertIncident, &incidents[i]); err != nil {
			return fmt.Errorf("failed to insert incident: %w", err)
		}
	}

	insertZone := `
		INSERT INTO zones (id, ring, lonlat_ring, centroid_lon, centroid_lat, area_km2)
		VALUES (:id, :ring, :lonlat_ring, :centroid_lon, :centroid_lat, :area_km2)
	`
	for i := range zones {
		rec, err := zoneToRecord(&zones[i])
		if err != nil {
			return err
		}
		if _, err := tx.NamedExec(insertZone, rec); err != nil {
			return fmt.Errorf("failed to insert zone: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("[Store] Replaced dataset: %d incidents, %d zones", len(incidents), len(zones))
	return nil
}

// LoadIncidents reads the full incident table.
func (s *IncidentStore) LoadIncidents() ([]models.Incident, error) {
	var incidents []models.Incident
	if err := s.db.Select(&incidents, "SELECT * FROM incidents"); err != nil {
		return nil, fmt.Errorf("failed to load incidents: %w", err)
	}
	return incidents, nil
}

// LoadZones reads the full zone table.
func (s *IncidentStore) LoadZones() ([]models.Zone, error) {
	var records []models.ZoneRecord
	if err := s.db.Select(&records, "SELECT * FROM zones ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to load zones: %w", err)
	}

	zones := make([]models.Zone, 0, len(records))
	for i := range records {
		zone, err := recordToZone(&records[i])
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

// RecordImportRun stores the outcome of one importer execution.
func (s *IncidentStore) RecordImportRun(run *models.ImportRun) error {
	query := `
		INSERT INTO import_runs (id, source, incidents, zones)
		VALUES (:id, :source, :incidents, :zones)
	`
	if _, err := s.db.NamedExec(query, run); err != nil {
		return fmt.Errorf("failed to record import run: %w", err)
	}
	return nil
}

// LatestImportRun returns the most recent import run, or nil when the
// store was never written.
func (s *IncidentStore) LatestImportRun() (*models.ImportRun, error) {
	var run models.ImportRun
	err := s.db.Get(&run, "SELECT * FROM import_runs ORDER BY created_at DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load import run: %w", err)
	}
	return &run, nil
}

func zoneToRecord(zone *models.Zone) (*models.ZoneRecord, error) {
	ring, err := json.Marshal(zone.Ring)
	if err != nil {
		return nil, fmt.Errorf("failed to encode zone ring: %w", err)
	}
	lonlat, err := json.Marshal(zone.LonLatRing)
	if err != nil {
		return nil, fmt.Errorf("failed to encode zone ring: %w", err)
	}
	return &models.ZoneRecord{
		ID:          zone.ID,
		Ring:        string(ring),
		LonLatRing:  string(lonlat),
		CentroidLon: zone.CentroidLon,
		CentroidLat: zone.CentroidLat,
		AreaKm2:     zone.AreaKm2,
	}, nil
}

func recordToZone(rec *models.ZoneRecord) (models.Zone, error) {
	zone := models.Zone{
		ID:          rec.ID,
		CentroidLon: rec.CentroidLon,
		CentroidLat: rec.CentroidLat,
		AreaKm2:     rec.AreaKm2,
	}
	if err := json.Unmarshal([]byte(rec.Ring), &zone.Ring); err != nil {
		return models.Zone{}, fmt.Errorf("failed to decode zone ring: %w", err)
	}
	if err := json.Unmarshal([]byte(rec.LonLatRing), &zone.LonLatRing); err != nil {
		return models.Zone{}, fmt.Errorf("failed to decode zone ring: %w", err)
	}
	return zone, nil
}
