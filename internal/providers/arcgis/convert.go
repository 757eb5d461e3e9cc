package arcgis

import "uk-lookup/internal/geo"

// ToGeometry converts ArcGIS "rings" geometry to the GeoJSON shape the
// containment evaluator and map layer consume: a single ring becomes a
// Polygon, multiple rings become a MultiPolygon with one member per ring.
// Returns nil when there is no geometry to convert.
func (g *FeatureGeometry) ToGeometry() *geo.Geometry {
	if g == nil || len(g.Rings) == 0 {
		return nil
	}
	if len(g.Rings) == 1 {
		return geo.NewPolygon(geo.Polygon{geo.Ring(g.Rings[0])})
	}
	mp := make(geo.MultiPolygon, 0, len(g.Rings))
	for _, ring := range g.Rings {
		mp = append(mp, geo.Polygon{geo.Ring(ring)})
	}
	return geo.NewMultiPolygon(mp)
}
