package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port         string
	DBPath       string
	IncidentsCSV string
	ZonesGeoJSON string
	JWTSecret    string
	ServiceArea  string // zone-code prefix of the service area
}

// Load reads the configuration from the environment
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/incidents.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	serviceArea := os.Getenv("SERVICE_AREA")
	if serviceArea == "" {
		serviceArea = "13"
	}

	return &Config{
		Port:         port,
		DBPath:       dbPath,
		IncidentsCSV: os.Getenv("INCIDENTS_CSV"),
		ZonesGeoJSON: os.Getenv("ZONES_GEOJSON"),
		JWTSecret:    jwtSecret,
		ServiceArea:  serviceArea,
	}
}
