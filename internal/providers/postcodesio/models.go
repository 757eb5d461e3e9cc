package postcodesio

// LookupAPIResponse is the postcodes.io single-postcode response envelope.
type LookupAPIResponse struct {
	Status int             `json:"status"`
	Error  string          `json:"error"`
	Result *PostcodeResult `json:"result"`
}

// ReverseAPIResponse is the postcodes.io reverse-geocode response envelope.
// Result is null when no postcode lies near the query point.
type ReverseAPIResponse struct {
	Status int              `json:"status"`
	Error  string           `json:"error"`
	Result []PostcodeResult `json:"result"`
}

// PostcodeResult is the subset of a postcodes.io result record the service
// consumes. Latitude and Longitude are pointers because the API returns null
// for some terminated or offshore postcodes.
type PostcodeResult struct {
	Postcode      string   `json:"postcode"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	AdminDistrict string   `json:"admin_district"`
	AdminCounty   string   `json:"admin_county"`
	Parish        string   `json:"parish"`
	Region        string   `json:"region"`
	Country       string   `json:"country"`
}

// AdminArea returns the administrative area name for the record, consulting
// the candidate fields in priority order: district, then county, then parish.
// "Unknown" when none is set.
func (r *PostcodeResult) AdminArea() string {
	for _, candidate := range []string{r.AdminDistrict, r.AdminCounty, r.Parish} {
		if candidate != "" {
			return candidate
		}
	}
	return "Unknown"
}
