package shop

import (
	"math"

	"coffeemap/models"
)

const earthRadiusKm = 6371.0

// Haversine computes the great-circle distance between two coordinates
// in kilometers.
func Haversine(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// AnnotateDistances fills in each shop's Distance from the caller's
// location. A nil location leaves every Distance nil, which makes the
// distance filter fail and distance sorting push those shops last.
func AnnotateDistances(shops []models.Shop, location *models.Coordinate) {
	if location == nil {
		return
	}
	for i := range shops {
		d := Haversine(*location, models.Coordinate{
			Latitude:  shops[i].Latitude,
			Longitude: shops[i].Longitude,
		})
		shops[i].Distance = &d
	}
}
