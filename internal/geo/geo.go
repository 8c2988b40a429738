package geo

import "math"

// EarthRadiusMiles is the mean Earth radius used for great-circle math
const EarthRadiusMiles = 3958.8

// Miles computes the great-circle distance in miles between two
// coordinates using the Haversine formula. Inputs are assumed to be
// valid WGS84 latitudes/longitudes.
func Miles(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	deltaLat := (lat2 - lat1) * math.Pi / 180.0
	deltaLon := (lon2 - lon1) * math.Pi / 180.0

	sinLat := math.Sin(deltaLat / 2)
	sinLon := math.Sin(deltaLon / 2)

	a := sinLat*sinLat + math.Cos(lat1Rad)*math.Cos(lat2Rad)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}
