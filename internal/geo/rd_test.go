package geo_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/tvdheuvel/incidents-backend-go/internal/geo"
)

func TestRDToWGS84(t *testing.T) {
	t.Run("AmsterdamReferencePoint", func(t *testing.T) {
		lon, lat := geo.RDToWGS84(121687, 487484)
		gt.True(t, math.Abs(lat-52.3728) < 0.001)
		gt.True(t, math.Abs(lon-4.9036) < 0.001)
	})

	t.Run("AmersfoortOrigin", func(t *testing.T) {
		lon, lat := geo.RDToWGS84(155000, 463000)
		gt.True(t, math.Abs(lat-52.15517440) < 1e-9)
		gt.True(t, math.Abs(lon-5.38720621) < 1e-9)
	})
}

func TestProjectRing(t *testing.T) {
	ring := [][]float64{
		{121000, 487000},
		{122000, 487000},
		{122000, 488000},
		{121000, 488000},
		{121000, 487000},
	}
	out := geo.ProjectRing(ring)
	gt.Equal(t, len(out), 5)
	for _, pt := range out {
		gt.True(t, pt[0] > 4.5 && pt[0] < 5.5)   // lon
		gt.True(t, pt[1] > 52.0 && pt[1] < 53.0) // lat
	}
}

func TestRingCentroidAndArea(t *testing.T) {
	// Roughly 1.11 km x 1.11 km square near Amsterdam.
	ring := [][]float64{
		{4.90, 52.37},
		{4.91, 52.37},
		{4.91, 52.38},
		{4.90, 52.38},
		{4.90, 52.37},
	}

	lon, lat := geo.RingCentroid(ring)
	gt.True(t, math.Abs(lon-4.905) < 0.001)
	gt.True(t, math.Abs(lat-52.375) < 0.001)

	area := geo.RingAreaKm2(ring)
	gt.True(t, area > 0.4 && area < 1.2)
}
