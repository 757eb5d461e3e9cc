package ogcfeatures

import "uk-lookup/internal/geo"

// FeatureCollection is a GeoJSON FeatureCollection as returned by an OGC API
// Features items endpoint.
type FeatureCollection struct {
	Type           string    `json:"type"`
	Features       []Feature `json:"features"`
	NumberReturned int       `json:"numberReturned"`
}

type Feature struct {
	Type       string            `json:"type"`
	Id         any               `json:"id"`
	Properties FeatureProperties `json:"properties"`
	Geometry   *geo.Geometry     `json:"geometry"`
}

// FeatureProperties carries the candidate name fields the consumed
// collections expose; absent fields decode to "".
type FeatureProperties struct {
	Name          string `json:"name"`
	Label         string `json:"label"`
	CatchmentName string `json:"opcat_name"`
}

// DisplayName returns the feature's display name, consulting the candidate
// fields in priority order.
func (p *FeatureProperties) DisplayName() string {
	for _, candidate := range []string{p.Name, p.Label, p.CatchmentName} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
