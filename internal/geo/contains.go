package geo

import "math"

const (
	// onEdgeTolerance is the distance, in degrees, within which a query point
	// counts as lying exactly on a ring edge.
	onEdgeTolerance = 1e-12
	// horizontalGuard keeps the crossing interpolation finite when an edge is
	// exactly horizontal. Such edges never satisfy the straddle test, so the
	// guard only has to prevent a division by zero, not preserve precision.
	horizontalGuard = 1e-18
)

// RingContains reports whether p lies inside the ring using the ray-casting
// parity test. Points within onEdgeTolerance of an edge segment count as
// inside regardless of parity. A ring with fewer than 3 points contains
// nothing.
func RingContains(ring Ring, p Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	x, y := p[0], p[1]
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		x1, y1 := ring[j][0], ring[j][1]
		x2, y2 := ring[i][0], ring[i][1]

		if onSegment(x1, y1, x2, y2, x, y) {
			return true
		}

		// Horizontal and degenerate edges fail the straddle test and
		// contribute no crossing.
		if (y1 > y) != (y2 > y) {
			crossX := (x2-x1)*(y-y1)/(y2-y1+horizontalGuard) + x1
			if x < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// onSegment reports whether (x, y) lies on the segment (x1, y1)-(x2, y2)
// within onEdgeTolerance: inside the segment's expanded bounding box and
// collinear by the cross-product test. No division, so repeated points are
// safe.
func onSegment(x1, y1, x2, y2, x, y float64) bool {
	if x < math.Min(x1, x2)-onEdgeTolerance || x > math.Max(x1, x2)+onEdgeTolerance ||
		y < math.Min(y1, y2)-onEdgeTolerance || y > math.Max(y1, y2)+onEdgeTolerance {
		return false
	}
	return math.Abs((y2-y1)*(x-x1)-(x2-x1)*(y-y1)) <= onEdgeTolerance
}

// PolygonContains reports whether p lies inside the polygon's outer ring and
// outside every hole. A point exactly on a hole's boundary is treated as
// inside the hole, so it is excluded from the polygon; this mirrors the outer
// ring's edge-inclusive test being reused for holes.
func PolygonContains(poly Polygon, p Point) bool {
	if len(poly) == 0 {
		return false
	}
	if !RingContains(poly[0], p) {
		return false
	}
	for _, hole := range poly[1:] {
		if RingContains(hole, p) {
			return false
		}
	}
	return true
}

// MultiPolygonContains reports whether any member polygon contains p.
func MultiPolygonContains(mp MultiPolygon, p Point) bool {
	_, ok := containingPolygon(mp, p)
	return ok
}

// containingPolygon returns the index of the first member polygon containing
// p, short-circuiting on the first match.
func containingPolygon(mp MultiPolygon, p Point) (int, bool) {
	for i, poly := range mp {
		if PolygonContains(poly, p) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether the geometry contains p. An empty or malformed
// geometry contains nothing.
func (g *Geometry) Contains(p Point) bool {
	if g.IsEmpty() {
		return false
	}
	return MultiPolygonContains(g.Polygons, p)
}

// ContainingPolygon returns the index of the first member polygon containing
// p, so a caller holding the original feature can recover the matching
// member's attributes.
func (g *Geometry) ContainingPolygon(p Point) (int, bool) {
	if g.IsEmpty() {
		return -1, false
	}
	return containingPolygon(g.Polygons, p)
}
