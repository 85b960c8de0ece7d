package aggregate

// spectral holds the ColorBrewer Spectral palettes by class count.
// The scheme supports 3 to 11 classes.
var spectral = map[int][]string{
	3:  {"#fc8d59", "#ffffbf", "#99d594"},
	4:  {"#d7191c", "#fdae61", "#abdda4", "#2b83ba"},
	5:  {"#d7191c", "#fdae61", "#ffffbf", "#abdda4", "#2b83ba"},
	6:  {"#d53e4f", "#fc8d59", "#fee08b", "#e6f598", "#99d594", "#3288bd"},
	7:  {"#d53e4f", "#fc8d59", "#fee08b", "#ffffbf", "#e6f598", "#99d594", "#3288bd"},
	8:  {"#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#e6f598", "#abdda4", "#66c2a5", "#3288bd"},
	9:  {"#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd"},
	10: {"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2"},
	11: {"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2"},
}

// Colors returns n distinct hex color codes and the number actually
// available. Requests below the smallest palette are served from it;
// requests beyond 11 are capped.
func Colors(n int) ([]string, int) {
	if n <= 0 {
		return nil, 0
	}
	if n < 3 {
		return spectral[3][:n], n
	}
	if n > 11 {
		return spectral[11], 11
	}
	return spectral[n], n
}
