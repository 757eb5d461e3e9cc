package lookup

import (
	"errors"

	"uk-lookup/internal/geo"
	"uk-lookup/internal/types"
)

// ErrEmptyInput is returned when neither a postcode nor an address was
// submitted.
var ErrEmptyInput = errors.New("enter either a postcode or an address")

// Request is the submitted form: a postcode, or an address when the postcode
// field is blank.
type Request struct {
	Postcode string
	Address  string
}

// Result is the lookup view model: the resolved point, the containing
// administrative and ecological areas, and their geometries for rendering.
type Result struct {
	Point         types.Coords `json:"point"`
	Postcode      string       `json:"postcode,omitempty"`
	LPAName       string       `json:"lpa_name"`
	NCAName       string       `json:"nca_name"`
	CatchmentName string       `json:"catchment_name,omitempty"`
	Notes         []string     `json:"notes,omitempty"`

	LPAGeometry       *geo.Geometry `json:"lpa_geometry,omitempty"`
	NCAGeometry       *geo.Geometry `json:"nca_geometry,omitempty"`
	CatchmentGeometry *geo.Geometry `json:"catchment_geometry,omitempty"`
}
