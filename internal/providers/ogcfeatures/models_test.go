package ogcfeatures

import (
	"encoding/json"
	"testing"

	"uk-lookup/internal/geo"
)

func TestFeatureProperties_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		props    FeatureProperties
		expected string
	}{
		{"name preferred", FeatureProperties{Name: "Thames", Label: "Thames Catchment"}, "Thames"},
		{"label when no name", FeatureProperties{Label: "Thames Catchment"}, "Thames Catchment"},
		{"opcat_name as last resort", FeatureProperties{CatchmentName: "Thames Lower"}, "Thames Lower"},
		{"empty", FeatureProperties{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.props.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFeatureCollection_Decode(t *testing.T) {
	payload := `{
		"type": "FeatureCollection",
		"numberReturned": 2,
		"features": [
			{
				"type": "Feature",
				"id": "c-1",
				"properties": {"name": "Near Miss"},
				"geometry": {"type": "Polygon", "coordinates": [[[10,10],[10,11],[11,11],[11,10]]]}
			},
			{
				"type": "Feature",
				"id": 2,
				"properties": {"opcat_name": "Hit"},
				"geometry": {"type": "MultiPolygon", "coordinates": [[[[0,0],[0,1],[1,1],[1,0]]]]}
			}
		]
	}`

	var fc FeatureCollection
	if err := json.Unmarshal([]byte(payload), &fc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("len(Features) = %d, want 2", len(fc.Features))
	}

	// bbox intersection alone would keep both candidates; only the second
	// genuinely contains the point.
	point := geo.Point{0.5, 0.5}
	var matched *Feature
	for i := range fc.Features {
		if fc.Features[i].Geometry.Contains(point) {
			matched = &fc.Features[i]
			break
		}
	}
	if matched == nil {
		t.Fatal("no feature contains the point")
	}
	if got := matched.Properties.DisplayName(); got != "Hit" {
		t.Errorf("matched feature name = %q, want Hit", got)
	}
}
