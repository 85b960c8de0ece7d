package main

import (
	"log"

	"github.com/google/uuid"

	"github.com/tvdheuvel/incidents-backend-go/internal/config"
	"github.com/tvdheuvel/incidents-backend-go/internal/database"
	"github.com/tvdheuvel/incidents-backend-go/internal/loader"
	"github.com/tvdheuvel/incidents-backend-go/internal/models"
	"github.com/tvdheuvel/incidents-backend-go/internal/repository"
)

func main() {
	cfg := config.Load()
	if cfg.IncidentsCSV == "" || cfg.ZonesGeoJSON == "" {
		log.Fatal("INCIDENTS_CSV and ZONES_GEOJSON must be set")
	}

	incidents, types, err := loader.LoadIncidents(cfg.IncidentsCSV, cfg.ServiceArea)
	if err != nil {
		log.Fatal("Failed to load incidents:", err)
	}
	zones, err := loader.LoadZones(cfg.ZonesGeoJSON)
	if err != nil {
		log.Fatal("Failed to load zones:", err)
	}

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	store := repository.NewIncidentStore(database.GetDB())
	if err := store.ReplaceAll(incidents, zones); err != nil {
		log.Fatal("Failed to store dataset:", err)
	}

	run := &models.ImportRun{
		ID:        uuid.NewString(),
		Source:    cfg.IncidentsCSV,
		Incidents: len(incidents),
		Zones:     len(zones),
	}
	if err := store.RecordImportRun(run); err != nil {
		log.Fatal("Failed to record import run:", err)
	}

	log.Printf("[Importer] Run %s: %d incidents (%d types), %d zones -> %s",
		run.ID, len(incidents), len(types), len(zones), cfg.DBPath)
}
