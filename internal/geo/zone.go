package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.01

// ringToLoop builds an s2 loop from a lon/lat ring. A closing point
// identical to the first is dropped, since s2 loops close implicitly.
func ringToLoop(ring [][]float64) *s2.Loop {
	pts := make([]s2.Point, 0, len(ring))
	for i, pt := range ring {
		if len(pt) < 2 {
			continue
		}
		if i == len(ring)-1 && len(ring) > 1 &&
			pt[0] == ring[0][0] && pt[1] == ring[0][1] {
			break
		}
		pts = append(pts, s2.PointFromLatLng(s2.LatLngFromDegrees(pt[1], pt[0])))
	}
	loop := s2.LoopFromPoints(pts)
	// Rings from the geometry file are not consistently wound; take the
	// interpretation that encloses the smaller area.
	if loop.Area() > 2*math.Pi {
		loop.Invert()
	}
	return loop
}

// RingCentroid returns the centroid of a lon/lat polygon ring in
// degrees (lon, lat).
func RingCentroid(ring [][]float64) (lon, lat float64) {
	loop := ringToLoop(ring)
	if loop.NumVertices() == 0 {
		return 0, 0
	}
	ll := s2.LatLngFromPoint(s2.Point{Vector: loop.Centroid().Normalize()})
	return ll.Lng.Degrees(), ll.Lat.Degrees()
}

// RingAreaKm2 returns the surface area enclosed by a lon/lat polygon
// ring in square kilometers.
func RingAreaKm2(ring [][]float64) float64 {
	loop := ringToLoop(ring)
	if loop.NumVertices() < 3 {
		return 0
	}
	return loop.Area() * earthRadiusKm * earthRadiusKm
}
