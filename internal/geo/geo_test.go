package geo

import (
	"encoding/json"
	"testing"
)

func TestGeometry_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantType     string
		wantPolygons int
		contains     *Point
		notContains  *Point
	}{
		{
			name:         "polygon",
			input:        `{"type":"Polygon","coordinates":[[[0,0],[0,10],[10,10],[10,0]]]}`,
			wantType:     "Polygon",
			wantPolygons: 1,
			contains:     &Point{5, 5},
			notContains:  &Point{15, 15},
		},
		{
			name:         "polygon with hole",
			input:        `{"type":"Polygon","coordinates":[[[0,0],[0,10],[10,10],[10,0]],[[4,4],[4,6],[6,6],[6,4]]]}`,
			wantType:     "Polygon",
			wantPolygons: 1,
			contains:     &Point{1, 1},
			notContains:  &Point{5, 5},
		},
		{
			name:         "multipolygon",
			input:        `{"type":"MultiPolygon","coordinates":[[[[0,0],[0,1],[1,1],[1,0]]],[[[100,100],[100,101],[101,101],[101,100]]]]}`,
			wantType:     "MultiPolygon",
			wantPolygons: 2,
			contains:     &Point{100.5, 100.5},
			notContains:  &Point{50, 50},
		},
		{
			name:         "empty coordinates",
			input:        `{"type":"Polygon","coordinates":[]}`,
			wantType:     "Polygon",
			wantPolygons: 0,
			notContains:  &Point{5, 5},
		},
		{
			name:         "missing coordinates",
			input:        `{"type":"Polygon"}`,
			wantType:     "Polygon",
			wantPolygons: 0,
			notContains:  &Point{5, 5},
		},
		{
			name:         "missing type",
			input:        `{"coordinates":[[[0,0],[0,10],[10,10],[10,0]]]}`,
			wantType:     "",
			wantPolygons: 0,
			notContains:  &Point{5, 5},
		},
		{
			name:         "unsupported type",
			input:        `{"type":"Point","coordinates":[5,5]}`,
			wantType:     "Point",
			wantPolygons: 0,
			notContains:  &Point{5, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Geometry
			if err := json.Unmarshal([]byte(tt.input), &g); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
			}
			if g.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", g.Type, tt.wantType)
			}
			if len(g.Polygons) != tt.wantPolygons {
				t.Errorf("len(Polygons) = %d, want %d", len(g.Polygons), tt.wantPolygons)
			}
			if tt.contains != nil && !g.Contains(*tt.contains) {
				t.Errorf("Contains(%v) = false, want true", *tt.contains)
			}
			if tt.notContains != nil && g.Contains(*tt.notContains) {
				t.Errorf("Contains(%v) = true, want false", *tt.notContains)
			}
		})
	}
}

func TestGeometry_MarshalJSON_RoundTrip(t *testing.T) {
	inputs := []string{
		`{"type":"Polygon","coordinates":[[[0,0],[0,10],[10,10],[10,0]],[[4,4],[4,6],[6,6],[6,4]]]}`,
		`{"type":"MultiPolygon","coordinates":[[[[0,0],[0,1],[1,1],[1,0]]],[[[100,100],[100,101],[101,101],[101,100]]]]}`,
	}

	for _, input := range inputs {
		var g Geometry
		if err := json.Unmarshal([]byte(input), &g); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		out, err := json.Marshal(&g)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(out) != input {
			t.Errorf("round trip = %s, want %s", out, input)
		}
	}

	empty := &Geometry{Type: "Polygon"}
	out, err := json.Marshal(empty)
	if err != nil {
		t.Fatalf("Marshal(empty) failed: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("Marshal(empty) = %s, want null", out)
	}
}
