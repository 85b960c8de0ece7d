package aggregate

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/tvdheuvel/incidents-backend-go/internal/models"
)

// Choropleth counts incidents per zone for the included types and the
// optional slider position, and joins the counts onto the full zone
// set. Zones without matching incidents are kept with rate 0 so the
// map never loses polygons when filters narrow.
func Choropleth(ds *models.Dataset, req models.ChoroplethRequest) (*geojson.FeatureCollection, error) {
	incidents := filterIncidents(ds, req.Types, nil)
	if req.Value >= 0 {
		var err error
		incidents, err = FilterSlider(incidents, TimeUnit(req.Unit), req.Value)
		if err != nil {
			return nil, err
		}
	}

	rates := make(map[string]int, len(ds.Zones))
	for _, in := range incidents {
		rates[in.ZoneID]++
	}

	fc := geojson.NewFeatureCollection()
	for i := range ds.Zones {
		zone := &ds.Zones[i]
		feature := geojson.NewPolygonFeature([][][]float64{zone.LonLatRing})
		feature.SetProperty("location_id", zone.ID)
		feature.SetProperty("incident_rate", rates[zone.ID])
		feature.SetProperty("centroid_lon", zone.CentroidLon)
		feature.SetProperty("centroid_lat", zone.CentroidLat)
		feature.SetProperty("area_km2", zone.AreaKm2)
		fc.AddFeature(feature)
	}
	return fc, nil
}
