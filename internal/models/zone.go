package models

// Zone is one demand-location polygon of the service area. Ring holds
// the exterior ring in the planar (RD New) system as read from the
// geometry file; LonLatRing is the same ring reprojected to WGS84.
// Exactly one geometry exists per zone id.
type Zone struct {
	ID          string      `json:"id"`
	Ring        [][]float64 `json:"-"`
	LonLatRing  [][]float64 `json:"ring"`
	CentroidLon float64     `json:"centroidLon"`
	CentroidLat float64     `json:"centroidLat"`
	AreaKm2     float64     `json:"areaKm2"`
}

// ZoneRecord is the flattened SQLite row form of a Zone; the rings are
// stored as JSON text.
type ZoneRecord struct {
	ID          string  `db:"id"`
	Ring        string  `db:"ring"`
	LonLatRing  string  `db:"lonlat_ring"`
	CentroidLon float64 `db:"centroid_lon"`
	CentroidLat float64 `db:"centroid_lat"`
	AreaKm2     float64 `db:"area_km2"`
}
