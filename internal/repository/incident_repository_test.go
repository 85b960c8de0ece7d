package repository_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/m-mizutani/gt"

	"github.com/tvdheuvel/incidents-backend-go/internal/database"
	"github.com/tvdheuvel/incidents-backend-go/internal/models"
	"github.com/tvdheuvel/incidents-backend-go/internal/repository"
)

func newTestStore(t *testing.T) *repository.IncidentStore {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	gt.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	gt.NoError(t, database.Migrate(db))
	return repository.NewIncidentStore(db)
}

func testIncidents() []models.Incident {
	return []models.Incident{
		{
			ID: "1", Type: "Binnenbrand", Date: "2023-01-02", Year: 2023,
			Month: "Jan", DayNr: "02", WeekNr: "01", DayName: "Mon",
			Hour: "08", Priority: 1, ZoneID: "13078001", X: 121687, Y: 487484,
		},
		{
			ID: "2", Type: "Hulpverlening", Date: "2023-01-03", Year: 2023,
			Month: "Jan", DayNr: "03", WeekNr: "01", DayName: "Tue",
			Hour: "14", Priority: 2, ZoneID: "13078002", X: 121700, Y: 487500,
		},
	}
}

func testZones() []models.Zone {
	return []models.Zone{
		{
			ID:          "13078001",
			Ring:        [][]float64{{121000, 487000}, {122000, 487000}, {122000, 488000}, {121000, 487000}},
			LonLatRing:  [][]float64{{4.89, 52.37}, {4.90, 52.37}, {4.90, 52.38}, {4.89, 52.37}},
			CentroidLon: 4.895,
			CentroidLat: 52.373,
			AreaKm2:     0.95,
		},
	}
}

func TestIncidentStore(t *testing.T) {
	store := newTestStore(t)

	t.Run("RoundTrip", func(t *testing.T) {
		gt.NoError(t, store.ReplaceAll(testIncidents(), testZones()))

		incidents, err := store.LoadIncidents()
		gt.NoError(t, err)
		gt.Equal(t, len(incidents), 2)
		gt.Equal(t, incidents[0], testIncidents()[0])

		zones, err := store.LoadZones()
		gt.NoError(t, err)
		gt.Equal(t, len(zones), 1)
		gt.Equal(t, zones[0], testZones()[0])
	})

	t.Run("ReplaceDiscardsPrevious", func(t *testing.T) {
		gt.NoError(t, store.ReplaceAll(testIncidents()[:1], testZones()))

		incidents, err := store.LoadIncidents()
		gt.NoError(t, err)
		gt.Equal(t, len(incidents), 1)
	})

	t.Run("ImportRuns", func(t *testing.T) {
		run, err := store.LatestImportRun()
		gt.NoError(t, err)
		gt.Nil(t, run)

		gt.NoError(t, store.RecordImportRun(&models.ImportRun{
			ID: "run-1", Source: "incidents.csv", Incidents: 2, Zones: 1,
		}))

		run, err = store.LatestImportRun()
		gt.NoError(t, err)
		gt.NotNil(t, run)
		gt.Equal(t, run.ID, "run-1")
		gt.Equal(t, run.Incidents, 2)
	})
}
