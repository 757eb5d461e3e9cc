package lookup

import (
	"regexp"
	"strings"
)

// postcodePattern matches UK postcodes, including the special GIR 0AA code.
var postcodePattern = regexp.MustCompile(`^(?i)(GIR\s?0AA|[A-Z]{1,2}\d[A-Z\d]?\s?\d[A-Z]{2})$`)

// LooksLikeUKPostcode reports whether the input has the shape of a UK
// postcode. A match does not mean the postcode exists, only that falling back
// to address geocoding should be reported as a lookup failure rather than an
// invalid input.
func LooksLikeUKPostcode(s string) bool {
	return postcodePattern.MatchString(strings.TrimSpace(s))
}
