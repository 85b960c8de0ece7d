package main

import (
	"log"

	"github.com/tvdheuvel/incidents-backend-go/internal/api"
	"github.com/tvdheuvel/incidents-backend-go/internal/config"
	"github.com/tvdheuvel/incidents-backend-go/internal/database"
	"github.com/tvdheuvel/incidents-backend-go/internal/repository"
	"github.com/tvdheuvel/incidents-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	// Prefer the raw files when configured; fall back to the SQLite
	// store the importer maintains.
	var source service.DatasetSource
	if cfg.IncidentsCSV != "" && cfg.ZonesGeoJSON != "" {
		source = service.FileSource(cfg.IncidentsCSV, cfg.ZonesGeoJSON, cfg.ServiceArea)
	} else {
		if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		defer database.Close()
		source = service.StoreSource(repository.NewIncidentStore(database.GetDB()))
	}

	svc, err := service.NewDashboardService(source)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}

	router := api.SetupRouter(cfg, svc)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
