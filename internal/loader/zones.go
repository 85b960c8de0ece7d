package loader

import (
	"fmt"
	"log"
	"os"
	"strconv"

	geojson "github.com/paulmach/go.geojson"

	"github.com/tvdheuvel/incidents-backend-go/internal/geo"
	"github.com/tvdheuvel/incidents-backend-go/internal/models"
)

// zoneProperty is the feature property carrying the zone code.
const zoneProperty = "vak"

// LoadZones reads the zone geometry file (GeoJSON, planar RD New
// coordinates) and returns the normalized zone table. Each zone keeps
// its planar exterior ring, the reprojected lon/lat ring, and the
// s2-derived centroid and area. Features without a zone code or
// usable polygon are skipped; the first geometry wins when a zone code
// appears twice.
func LoadZones(path string) ([]models.Zone, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zone file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse zone file: %w", err)
	}

	seen := make(map[string]bool)
	var zones []models.Zone
	skipped := 0

	for _, feature := range fc.Features {
		id, ok := featureZoneID(feature)
		if !ok || seen[id] {
			skipped++
			continue
		}

		ring := exteriorRing(feature)
		if len(ring) < 3 {
			skipped++
			continue
		}

		lonlat := geo.ProjectRing(ring)
		cLon, cLat := geo.RingCentroid(lonlat)

		seen[id] = true
		zones = append(zones, models.Zone{
			ID:          id,
			Ring:        ring,
			LonLatRing:  lonlat,
			CentroidLon: cLon,
			CentroidLat: cLat,
			AreaKm2:     geo.RingAreaKm2(lonlat),
		})
	}

	log.Printf("[Loader] Loaded %d zones from %s (%d features skipped)",
		len(zones), path, skipped)

	return zones, nil
}

// featureZoneID extracts the zone code property, which appears either
// as a JSON number or as a string depending on the export.
func featureZoneID(f *geojson.Feature) (string, bool) {
	v, ok := f.Properties[zoneProperty]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		norm, ok := normalizeZoneID(t)
		return norm, ok
	case float64:
		return strconv.FormatInt(int64(t), 10), true
	default:
		return "", false
	}
}

// exteriorRing returns the exterior ring of the feature's polygon, or
// of its first polygon for multi-polygon features.
func exteriorRing(f *geojson.Feature) [][]float64 {
	g := f.Geometry
	if g == nil {
		return nil
	}
	switch {
	case g.IsPolygon() && len(g.Polygon) > 0:
		return g.Polygon[0]
	case g.IsMultiPolygon() && len(g.MultiPolygon) > 0 && len(g.MultiPolygon[0]) > 0:
		return g.MultiPolygon[0][0]
	default:
		return nil
	}
}
