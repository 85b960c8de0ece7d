package geo

// Transformation between the Dutch national planar system (RD New,
// EPSG:28992) and geographic WGS84 coordinates, using the polynomial
// approximation by Schreutelkamp and Strang van Hees. Accurate to
// roughly 25 cm within the RD bounds, which is far below zone size.

const (
	rdX0 = 155000.0 // Amersfoort origin
	rdY0 = 463000.0

	phi0 = 52.15517440 // degrees
	lam0 = 5.38720621
)

type rdTerm struct {
	p, q int
	coef float64
}

var phiTerms = []rdTerm{
	{0, 1, 3235.65389},
	{2, 0, -32.58297},
	{0, 2, -0.24750},
	{2, 1, -0.84978},
	{0, 3, -0.06550},
	{2, 2, -0.01709},
	{1, 0, -0.00738},
	{4, 0, 0.00530},
	{2, 3, -0.00039},
	{4, 1, 0.00033},
	{1, 1, -0.00012},
}

var lamTerms = []rdTerm{
	{1, 0, 5260.52916},
	{1, 1, 105.94684},
	{1, 2, 2.45656},
	{3, 0, -0.81885},
	{1, 3, 0.05594},
	{3, 1, -0.05607},
	{0, 1, 0.01199},
	{3, 2, -0.00256},
	{1, 4, 0.00128},
	{0, 2, 0.00022},
	{2, 0, -0.00022},
	{5, 0, 0.00026},
}

func pow(base float64, exp int) float64 {
	r := 1.0
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// RDToWGS84 converts planar RD New x/y coordinates (meters) to
// longitude and latitude in degrees.
func RDToWGS84(x, y float64) (lon, lat float64) {
	dx := (x - rdX0) * 1e-5
	dy := (y - rdY0) * 1e-5

	var dPhi, dLam float64
	for _, t := range phiTerms {
		dPhi += t.coef * pow(dx, t.p) * pow(dy, t.q)
	}
	for _, t := range lamTerms {
		dLam += t.coef * pow(dx, t.p) * pow(dy, t.q)
	}

	lat = phi0 + dPhi/3600
	lon = lam0 + dLam/3600
	return lon, lat
}

// ProjectRing converts a planar polygon ring to a lon/lat ring.
func ProjectRing(ring [][]float64) [][]float64 {
	out := make([][]float64, 0, len(ring))
	for _, pt := range ring {
		if len(pt) < 2 {
			continue
		}
		lon, lat := RDToWGS84(pt[0], pt[1])
		out = append(out, []float64{lon, lat})
	}
	return out
}
