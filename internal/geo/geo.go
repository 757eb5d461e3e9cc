package geo

import (
	"encoding/json"
)

// Point is a WGS84 coordinate pair in GeoJSON order: index 0 is longitude,
// index 1 is latitude.
type Point [2]float64

// Lon returns the longitude (x) component.
func (p Point) Lon() float64 { return p[0] }

// Lat returns the latitude (y) component.
func (p Point) Lat() float64 { return p[1] }

// Ring is a closed boundary loop. The first and last points do not need to be
// identical; the containment tests treat the ring as cyclic either way.
type Ring []Point

// Polygon is one outer ring (index 0) followed by zero or more hole rings.
type Polygon []Ring

// MultiPolygon is an ordered list of polygons, each with its own outer ring
// and holes.
type MultiPolygon []Polygon

// Geometry handles both Polygon and MultiPolygon GeoJSON types.
type Geometry struct {
	Type     string
	Polygons MultiPolygon
}

// NewPolygon wraps a single polygon as a Geometry.
func NewPolygon(p Polygon) *Geometry {
	return &Geometry{Type: "Polygon", Polygons: MultiPolygon{p}}
}

// NewMultiPolygon wraps a set of polygons as a Geometry.
func NewMultiPolygon(mp MultiPolygon) *Geometry {
	return &Geometry{Type: "MultiPolygon", Polygons: mp}
}

// UnmarshalJSON decodes the standard GeoJSON encoding. Polygon coordinates
// become a single-member Polygons slice; MultiPolygon members keep their own
// outer ring and holes. A missing or unrecognised type, or absent coordinates,
// leaves the geometry empty rather than failing: the producing services are
// untrusted and "no geometry" is an expected state.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Type = raw.Type
	g.Polygons = nil
	if len(raw.Coordinates) == 0 {
		return nil
	}

	switch raw.Type {
	case "Polygon":
		var poly Polygon
		if err := json.Unmarshal(raw.Coordinates, &poly); err != nil {
			return err
		}
		if len(poly) > 0 {
			g.Polygons = MultiPolygon{poly}
		}
	case "MultiPolygon":
		var multi MultiPolygon
		if err := json.Unmarshal(raw.Coordinates, &multi); err != nil {
			return err
		}
		g.Polygons = multi
	}
	return nil
}

// MarshalJSON re-emits the geometry in its GeoJSON form, so a decoded feature
// geometry can be handed straight to a map rendering layer.
func (g *Geometry) MarshalJSON() ([]byte, error) {
	switch {
	case len(g.Polygons) == 0:
		return []byte(`null`), nil
	case g.Type == "Polygon" && len(g.Polygons) == 1:
		return json.Marshal(struct {
			Type        string  `json:"type"`
			Coordinates Polygon `json:"coordinates"`
		}{Type: "Polygon", Coordinates: g.Polygons[0]})
	default:
		return json.Marshal(struct {
			Type        string       `json:"type"`
			Coordinates MultiPolygon `json:"coordinates"`
		}{Type: "MultiPolygon", Coordinates: g.Polygons})
	}
}

// IsEmpty reports whether the geometry carries no polygons.
func (g *Geometry) IsEmpty() bool {
	return g == nil || len(g.Polygons) == 0
}
