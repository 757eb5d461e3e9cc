package types

// Coords is a WGS84 coordinate pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// LonLat returns the coordinate in GeoJSON longitude-first order.
func (c Coords) LonLat() [2]float64 {
	return [2]float64{c.Longitude, c.Latitude}
}
