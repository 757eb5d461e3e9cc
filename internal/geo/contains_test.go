package geo

import (
	"testing"
)

// square is a 10x10 ring with its corner at the origin, lon/lat order.
var square = Ring{{0, 0}, {0, 10}, {10, 10}, {10, 0}}

func reversed(r Ring) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

func TestRingContains(t *testing.T) {
	tests := []struct {
		name     string
		ring     Ring
		point    Point
		expected bool
	}{
		{"interior point", square, Point{5, 5}, true},
		{"exterior point", square, Point{15, 15}, false},
		{"point on edge", square, Point{0, 5}, true},
		{"point on vertex", square, Point{10, 10}, true},
		{"point just outside edge", square, Point{-0.001, 5}, false},
		{"two point ring", Ring{{0, 0}, {10, 10}}, Point{5, 5}, false},
		{"empty ring", Ring{}, Point{5, 5}, false},
		{"ring with repeated point", Ring{{0, 0}, {0, 0}, {0, 10}, {10, 10}, {10, 0}}, Point{5, 5}, true},
		{"explicitly closed ring", Ring{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}, Point{5, 5}, true},
		{"point on horizontal edge", square, Point{5, 10}, true},
		{"collinear vertex on edge", Ring{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}, Point{5, 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RingContains(tt.ring, tt.point)
			if result != tt.expected {
				t.Errorf("RingContains(%v, %v) = %v, want %v", tt.ring, tt.point, result, tt.expected)
			}
		})
	}
}

func TestRingContains_WindingOrderIndependent(t *testing.T) {
	points := []Point{{5, 5}, {15, 15}, {0, 5}, {10, 10}, {-1, -1}, {9.999, 0.001}}
	for _, p := range points {
		cw := RingContains(square, p)
		ccw := RingContains(reversed(square), p)
		if cw != ccw {
			t.Errorf("RingContains(%v) differs by winding order: cw=%v ccw=%v", p, cw, ccw)
		}
	}
}

func TestRingContains_Idempotent(t *testing.T) {
	p := Point{5, 5}
	first := RingContains(square, p)
	for i := 0; i < 10; i++ {
		if RingContains(square, p) != first {
			t.Fatalf("RingContains result drifted on repeat evaluation %d", i)
		}
	}
}

func TestPolygonContains(t *testing.T) {
	hole := Ring{{4, 4}, {4, 6}, {6, 6}, {6, 4}}
	withHole := Polygon{square, hole}

	tests := []struct {
		name     string
		poly     Polygon
		point    Point
		expected bool
	}{
		{"inside outer, no holes", Polygon{square}, Point{5, 5}, true},
		{"inside hole", withHole, Point{5, 5}, false},
		{"inside outer, outside hole", withHole, Point{1, 1}, true},
		{"on outer boundary", withHole, Point{0, 5}, true},
		{"on hole boundary", withHole, Point{4, 5}, false},
		{"outside outer", withHole, Point{15, 15}, false},
		{"empty polygon", Polygon{}, Point{5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PolygonContains(tt.poly, tt.point)
			if result != tt.expected {
				t.Errorf("PolygonContains(%v) = %v, want %v", tt.point, result, tt.expected)
			}
		})
	}
}

func TestMultiPolygonContains(t *testing.T) {
	mp := MultiPolygon{
		{Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}}},
		{Ring{{100, 100}, {100, 101}, {101, 101}, {101, 100}}},
	}

	tests := []struct {
		name     string
		point    Point
		expected bool
	}{
		{"inside first member", Point{0.5, 0.5}, true},
		{"inside second member", Point{100.5, 100.5}, true},
		{"between members", Point{50, 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MultiPolygonContains(mp, tt.point)
			if result != tt.expected {
				t.Errorf("MultiPolygonContains(%v) = %v, want %v", tt.point, result, tt.expected)
			}
		})
	}
}

func TestGeometry_ContainingPolygon(t *testing.T) {
	g := NewMultiPolygon(MultiPolygon{
		{Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}}},
		{Ring{{100, 100}, {100, 101}, {101, 101}, {101, 100}}},
	})

	if idx, ok := g.ContainingPolygon(Point{100.5, 100.5}); !ok || idx != 1 {
		t.Errorf("ContainingPolygon(second square) = (%d, %v), want (1, true)", idx, ok)
	}
	if idx, ok := g.ContainingPolygon(Point{0.5, 0.5}); !ok || idx != 0 {
		t.Errorf("ContainingPolygon(first square) = (%d, %v), want (0, true)", idx, ok)
	}
	if idx, ok := g.ContainingPolygon(Point{50, 50}); ok || idx != -1 {
		t.Errorf("ContainingPolygon(miss) = (%d, %v), want (-1, false)", idx, ok)
	}

	var empty *Geometry
	if empty.Contains(Point{0, 0}) {
		t.Error("nil geometry must not contain anything")
	}
}
