package geo

import "math"

const earthRadius = 6371e3 // meters

// Haversine returns the great-circle distance in meters between two
// lon/lat positions in degrees. Altitude is not part of the model;
// this is a 2-D distance on a sphere.
func Haversine(lon1, lat1, lon2, lat2 float64) float64 {
	phi1 := toRad(lat1)
	phi2 := toRad(lat2)
	dPhi := toRad(lat2 - lat1)
	dLambda := toRad(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
