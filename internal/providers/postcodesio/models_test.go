package postcodesio

import "testing"

func TestPostcodeResult_AdminArea(t *testing.T) {
	tests := []struct {
		name     string
		result   PostcodeResult
		expected string
	}{
		{
			name:     "district preferred",
			result:   PostcodeResult{AdminDistrict: "Westminster", AdminCounty: "Greater London", Parish: "St James"},
			expected: "Westminster",
		},
		{
			name:     "county when no district",
			result:   PostcodeResult{AdminCounty: "Kent", Parish: "Sevenoaks"},
			expected: "Kent",
		},
		{
			name:     "parish as last resort",
			result:   PostcodeResult{Parish: "Sevenoaks"},
			expected: "Sevenoaks",
		},
		{
			name:     "unknown when all empty",
			result:   PostcodeResult{},
			expected: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.AdminArea(); got != tt.expected {
				t.Errorf("AdminArea() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalisePostcode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"sw1a 1aa", "SW1A1AA"},
		{"SW1A1AA", "SW1A1AA"},
		{" eh1  1yz ", "EH11YZ"},
		{"GIR 0AA", "GIR0AA"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalisePostcode(tt.input); got != tt.expected {
				t.Errorf("NormalisePostcode(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
