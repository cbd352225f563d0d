package models

// GeoPoint represents a geographical point defined by its latitude and longitude.
type GeoPoint struct {
	Latitude  float64 // Latitude of the geographical point, decimal degrees.
	Longitude float64 // Longitude of the geographical point, decimal degrees.
}

// Region is a coarse tag for Nigeria's climatic zones. It selects the
// regional soiling and temperature adjustments of the loss model.
type Region string

const (
	// RegionNorth covers the arid north (Kano, Kaduna, Maiduguri).
	RegionNorth Region = "north"
	// RegionMiddleBelt covers the central savanna around Abuja.
	RegionMiddleBelt Region = "middle_belt"
	// RegionSouthWest covers the Lagos/Ibadan corridor.
	RegionSouthWest Region = "south_west"
	// RegionSouthEast covers the eastern forest belt.
	RegionSouthEast Region = "south_east"
	// RegionSouthSouth covers the coastal Niger Delta.
	RegionSouthSouth Region = "south_south"
)

// City is one entry of the fixed Nigerian city catalog: coordinates,
// multi-year average daily irradiance and the climatic region it sits in.
type City struct {
	Name       string   // Name of the city.
	Location   GeoPoint // Location is the city's coordinates.
	Irradiance float64  // Irradiance is the average daily irradiance, kWh/m²/day.
	Region     Region   // Region is the climatic zone the city belongs to.
}
