// Package mapview turns a lookup result into a renderer-agnostic map view
// model: a center, a marker, styled polygon overlays, and fitted bounds. The
// HTTP layer serialises it into a Leaflet page.
package mapview

import (
	"uk-lookup/internal/geo"
	"uk-lookup/internal/lookup"
	"uk-lookup/internal/types"
)

const defaultZoom = 11

// Overlay is one styled polygon layer on the map.
type Overlay struct {
	Name        string        `json:"name"`
	Color       string        `json:"color"`
	Weight      int           `json:"weight"`
	FillOpacity float64       `json:"fillOpacity"`
	Geometry    *geo.Geometry `json:"geometry"`
}

// View is the complete map view model.
type View struct {
	Center   types.Coords `json:"center"`
	Zoom     int          `json:"zoom"`
	Marker   types.Coords `json:"marker"`
	Overlays []Overlay    `json:"overlays"`
	// Bounds is [[south, west], [north, east]] in Leaflet's lat-first order.
	Bounds [2][2]float64 `json:"bounds"`
}

// Build assembles the map view for a lookup result. Overlays without
// geometry are dropped; bounds cover every overlay's outer rings plus the
// query point.
func Build(result *lookup.Result) View {
	view := View{
		Center: result.Point,
		Zoom:   defaultZoom,
		Marker: result.Point,
	}

	// Always a non-nil slice: the page script iterates overlays even when
	// every feature came back without geometry.
	view.Overlays = []Overlay{}

	overlays := []Overlay{
		{Name: "LPA: " + result.LPAName, Color: "red", Weight: 2, FillOpacity: 0.05, Geometry: result.LPAGeometry},
		{Name: "NCA: " + result.NCAName, Color: "yellow", Weight: 3, FillOpacity: 0.05, Geometry: result.NCAGeometry},
	}
	if result.CatchmentName != "" {
		overlays = append(overlays, Overlay{
			Name: "Catchment: " + result.CatchmentName, Color: "blue", Weight: 2, FillOpacity: 0.05,
			Geometry: result.CatchmentGeometry,
		})
	}
	for _, o := range overlays {
		if !o.Geometry.IsEmpty() {
			view.Overlays = append(view.Overlays, o)
		}
	}

	view.Bounds = fitBounds(view.Overlays, result.Point)
	return view
}

// fitBounds computes the smallest lat/lon box covering each overlay's outer
// rings and the query point. Holes never extend beyond their outer ring, so
// only ring 0 of each member polygon is considered.
func fitBounds(overlays []Overlay, point types.Coords) [2][2]float64 {
	minLat, maxLat := point.Latitude, point.Latitude
	minLon, maxLon := point.Longitude, point.Longitude

	extend := func(p geo.Point) {
		if p.Lat() < minLat {
			minLat = p.Lat()
		}
		if p.Lat() > maxLat {
			maxLat = p.Lat()
		}
		if p.Lon() < minLon {
			minLon = p.Lon()
		}
		if p.Lon() > maxLon {
			maxLon = p.Lon()
		}
	}

	for _, o := range overlays {
		if o.Geometry == nil {
			continue
		}
		for _, poly := range o.Geometry.Polygons {
			if len(poly) == 0 {
				continue
			}
			for _, p := range poly[0] {
				extend(p)
			}
		}
	}

	return [2][2]float64{{minLat, minLon}, {maxLat, maxLon}}
}
