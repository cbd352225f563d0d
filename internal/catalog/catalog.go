// Package catalog holds the fixed table of Nigerian reference cities
// used for the local irradiance fallback and the city lookup endpoint.
// The table is immutable after process start and safe for unlimited
// concurrent readers.
package catalog

import "github.com/seewa-ng/helios/internal/models"

// FallbackIrradiance is the Nigeria-wide average daily irradiance,
// kWh/m²/day, returned only if the city table were ever empty.
const FallbackIrradiance = 5.0

// cities is the frozen catalog. Order matters: Nearest breaks distance
// ties by picking the first entry, so reordering changes results.
var cities = []models.City{
	{Name: "Lagos", Location: models.GeoPoint{Latitude: 6.5244, Longitude: 3.3792}, Irradiance: 4.8, Region: models.RegionSouthWest},
	{Name: "Abuja", Location: models.GeoPoint{Latitude: 9.0579, Longitude: 7.4951}, Irradiance: 5.2, Region: models.RegionMiddleBelt},
	{Name: "Kano", Location: models.GeoPoint{Latitude: 12.0022, Longitude: 8.5920}, Irradiance: 5.5, Region: models.RegionNorth},
	{Name: "Ibadan", Location: models.GeoPoint{Latitude: 7.3776, Longitude: 3.9470}, Irradiance: 4.9, Region: models.RegionSouthWest},
	{Name: "Port Harcourt", Location: models.GeoPoint{Latitude: 4.8156, Longitude: 7.0498}, Irradiance: 4.5, Region: models.RegionSouthSouth},
	{Name: "Benin City", Location: models.GeoPoint{Latitude: 6.3350, Longitude: 5.6037}, Irradiance: 4.7, Region: models.RegionSouthSouth},
	{Name: "Kaduna", Location: models.GeoPoint{Latitude: 10.5105, Longitude: 7.4165}, Irradiance: 5.3, Region: models.RegionNorth},
	{Name: "Maiduguri", Location: models.GeoPoint{Latitude: 11.8333, Longitude: 13.1500}, Irradiance: 5.6, Region: models.RegionNorth},
}

// Cities returns a copy of the catalog in its frozen order.
func Cities() []models.City {
	out := make([]models.City, len(cities))
	copy(out, cities)
	return out
}

// Nearest returns the catalog city closest to the given coordinates and
// whether the catalog is non-empty.
//
// Distance is unweighted 2-D Euclidean distance in raw lat/lng degrees,
// not geodesic. This is a deliberate approximation kept for result
// stability: switching to a great-circle metric would change which city
// wins near ties. Ties resolve to the first entry in catalog order
// (strict < comparison).
func Nearest(lat, lng float64) (models.City, bool) {
	if len(cities) == 0 {
		return models.City{}, false
	}

	best := cities[0]
	bestDist := sqDist(lat, lng, best.Location)
	for _, city := range cities[1:] {
		if d := sqDist(lat, lng, city.Location); d < bestDist {
			best = city
			bestDist = d
		}
	}
	return best, true
}

// sqDist is the squared planar distance; monotonic in the real distance,
// so the square root is never needed for comparison.
func sqDist(lat, lng float64, p models.GeoPoint) float64 {
	dLat := lat - p.Latitude
	dLng := lng - p.Longitude
	return dLat*dLat + dLng*dLng
}
