package aggregate_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/tvdheuvel/incidents-backend-go/internal/aggregate"
	"github.com/tvdheuvel/incidents-backend-go/internal/models"
)

func squareRing(lon, lat float64) [][]float64 {
	return [][]float64{
		{lon, lat},
		{lon + 0.01, lat},
		{lon + 0.01, lat + 0.01},
		{lon, lat + 0.01},
		{lon, lat},
	}
}

func choroplethDataset() *models.Dataset {
	ds := twoDayDataset()
	ds.Zones = []models.Zone{
		{ID: "13001", LonLatRing: squareRing(4.89, 52.37)},
		{ID: "13002", LonLatRing: squareRing(4.90, 52.37)},
		{ID: "13003", LonLatRing: squareRing(4.91, 52.37)},
	}
	return ds
}

func TestChoropleth(t *testing.T) {
	ds := choroplethDataset()

	t.Run("CountsPerZone", func(t *testing.T) {
		fc, err := aggregate.Choropleth(ds, models.ChoroplethRequest{
			Types: []string{"Fire", "Medical"},
			Value: -1,
		})
		gt.NoError(t, err)
		gt.Equal(t, len(fc.Features), 3)

		rates := map[string]int{}
		for _, f := range fc.Features {
			id := f.Properties["location_id"].(string)
			rates[id] = f.Properties["incident_rate"].(int)
		}
		gt.Equal(t, rates["13001"], 3)
		gt.Equal(t, rates["13002"], 1)
		// Zone without incidents is kept with rate 0, not dropped.
		gt.Equal(t, rates["13003"], 0)
	})

	t.Run("TypeFilter", func(t *testing.T) {
		fc, err := aggregate.Choropleth(ds, models.ChoroplethRequest{
			Types: []string{"Medical"},
			Value: -1,
		})
		gt.NoError(t, err)

		rates := map[string]int{}
		for _, f := range fc.Features {
			rates[f.Properties["location_id"].(string)] = f.Properties["incident_rate"].(int)
		}
		gt.Equal(t, rates["13001"], 1)
		gt.Equal(t, rates["13002"], 0)
	})

	t.Run("SliderFilter", func(t *testing.T) {
		fc, err := aggregate.Choropleth(ds, models.ChoroplethRequest{
			Types: []string{"Fire", "Medical"},
			Unit:  "hour",
			Value: 9,
		})
		gt.NoError(t, err)

		rates := map[string]int{}
		for _, f := range fc.Features {
			rates[f.Properties["location_id"].(string)] = f.Properties["incident_rate"].(int)
		}
		gt.Equal(t, rates["13001"], 1)
		gt.Equal(t, rates["13002"], 0)
	})

	t.Run("BadSliderUnit", func(t *testing.T) {
		_, err := aggregate.Choropleth(ds, models.ChoroplethRequest{
			Types: []string{"Fire"},
			Unit:  "minute",
			Value: 3,
		})
		gt.Error(t, err)
	})
}
