package arcgis

import "uk-lookup/internal/geo"

// QueryAPIResponse is the FeatureServer layer query envelope. ArcGIS reports
// service errors in a 200 response with an "error" member.
type QueryAPIResponse struct {
	Features []Feature `json:"features"`
	Error    *APIError `json:"error"`
}

type APIError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// Feature is one polygon feature: descriptive attributes plus geometry in the
// ArcGIS native "rings" encoding.
type Feature struct {
	Attributes FeatureAttributes `json:"attributes"`
	Geometry   *FeatureGeometry  `json:"geometry"`
}

// FeatureAttributes carries the attribute fields the consumed layers expose.
// Each layer populates its own subset; absent fields decode to "".
type FeatureAttributes struct {
	// National Character Areas layer
	NCAName string `json:"NCA_Name"`
	JCAName string `json:"JCANAME"`
	// Local Authority Districts layer
	LAD24NM string `json:"LAD24NM"`
	LAD24CD string `json:"LAD24CD"`
	// Older layer revisions use a bare NAME field.
	Name string `json:"NAME"`
}

// FeatureGeometry is an ArcGIS polygon: a flat list of rings with no
// outer/hole structure.
type FeatureGeometry struct {
	Rings [][]geo.Point `json:"rings"`
}
