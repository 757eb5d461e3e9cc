//go:build integration

package postcodesio

import (
	"log/slog"
	"testing"
)

func TestClient_Lookup_Integration(t *testing.T) {
	client := NewClient(slog.Default())

	t.Logf("Making API call to postcodes.io...")

	result, err := client.Lookup("SW1A 1AA")
	if err != nil {
		t.Fatalf("Failed to look up postcode: %v", err)
	}

	if result.Postcode == "" {
		t.Error("Postcode is empty")
	}
	if result.Latitude == nil || result.Longitude == nil {
		t.Fatal("Coordinates are missing")
	}

	t.Logf("Postcode: %s", result.Postcode)
	t.Logf("Coordinates: lat=%f, lon=%f", *result.Latitude, *result.Longitude)
	t.Logf("Admin area: %s", result.AdminArea())

	if result.AdminArea() == "Unknown" {
		t.Error("Expected a known admin area for SW1A 1AA")
	}
}

func TestClient_Lookup_Integration_NotFound(t *testing.T) {
	client := NewClient(slog.Default())

	_, err := client.Lookup("ZZ99 9ZZ")
	if err == nil {
		t.Fatal("Expected an error for an invalid postcode")
	}
	t.Logf("Got expected error: %v", err)
}

func TestClient_ReverseLookup_Integration(t *testing.T) {
	client := NewClient(slog.Default())

	// Buckingham Palace area
	result, err := client.ReverseLookup(51.5010, -0.1416)
	if err != nil {
		t.Fatalf("Failed to reverse geocode: %v", err)
	}
	if result == nil {
		t.Fatal("Expected a nearest postcode in central London")
	}

	t.Logf("Nearest postcode: %s", result.Postcode)
	t.Logf("Admin area: %s", result.AdminArea())
}
