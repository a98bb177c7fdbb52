package haversine

import "math"

// EarthRadius is the mean Earth radius, in kilometers, used by the reference
// formula.
const EarthRadius = 6372.8

// Coordinate bounds for generated pairs, in degrees.
const (
	XLow  = -180.0
	XHigh = 180.0
	YLow  = -90.0
	YHigh = 90.0
)

// Pair is one pair of (longitude, latitude) points.
type Pair struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Data is a deserialized input file.
type Data struct {
	Pairs []Pair `json:"pairs"`
}

// Reference computes the haversine distance between the pair's two points
// over a sphere of the given radius.
func Reference(p Pair, radius float64) float64 {
	lat1, lat2 := p.Y0, p.Y1
	lon1, lon2 := p.X0, p.X1

	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	lat1Rad := radians(lat1)
	lat2Rad := radians(lat2)

	a := sq(math.Sin(dLat/2)) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*sq(math.Sin(dLon/2))

	c := 2 * math.Asin(math.Sqrt(a))

	return radius * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func sq(x float64) float64 {
	return x * x
}
