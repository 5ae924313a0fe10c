package mapview

import (
	"testing"

	"flx-labs/stay-sip/internal/models"
)

func fptr(f float64) *float64 { return &f }

func TestMarkersSkipRecordsWithoutLocation(t *testing.T) {
	collections := map[string][]models.ListingRecord{
		"stays": {
			{ID: "s1", Name: "Lodge", Lake: "Seneca", Lat: fptr(42.37), Lng: fptr(-76.88)},
			{ID: "s2", Name: "Tents"}, // no coordinates: cards only
		},
		"wineries": {
			{ID: "w1", Name: "Cellars", Lat: fptr(42.45), Lng: fptr(-77.21)},
		},
	}

	markers := Markers(collections)
	if len(markers) != 2 {
		t.Fatalf("Expected 2 markers, got %d", len(markers))
	}
	if markers[0].Name != "Lodge" || markers[0].Kind != "Stay" {
		t.Errorf("First marker wrong: %+v", markers[0])
	}
	if markers[1].Name != "Cellars" || markers[1].Kind != "Winery" {
		t.Errorf("Second marker wrong: %+v", markers[1])
	}
}

func TestMarkersIgnoreItineraries(t *testing.T) {
	collections := map[string][]models.ListingRecord{
		"itineraries": {
			{ID: "i1", Title: "Loop", Lat: fptr(42.6), Lng: fptr(-77.1)},
		},
	}
	if markers := Markers(collections); len(markers) != 0 {
		t.Fatalf("Itineraries should never produce markers, got %d", len(markers))
	}
}

func TestMarkersCarryGeohashCells(t *testing.T) {
	collections := map[string][]models.ListingRecord{
		"stays": {{ID: "s1", Name: "Lodge", Lat: fptr(42.3745), Lng: fptr(-76.8808)}},
	}
	markers := Markers(collections)
	if len(markers) != 1 {
		t.Fatalf("Expected 1 marker, got %d", len(markers))
	}
	if len(markers[0].Cell) != cellPrecision {
		t.Errorf("Expected %d-char cell, got %q", cellPrecision, markers[0].Cell)
	}
}

func TestClusterGroupsByCell(t *testing.T) {
	// Two markers a few hundred meters apart share a 5-char cell; the
	// third sits on another lake.
	collections := map[string][]models.ListingRecord{
		"stays": {
			{ID: "s1", Name: "Lodge", Lat: fptr(42.3745), Lng: fptr(-76.8808)},
			{ID: "s2", Name: "Inn", Lat: fptr(42.3759), Lng: fptr(-76.8735)},
			{ID: "s3", Name: "Cottage", Lat: fptr(42.5559), Lng: fptr(-77.0953)},
		},
	}
	clusters := Cluster(Markers(collections))
	if len(clusters) != 2 {
		t.Fatalf("Expected 2 cells, got %d: %v", len(clusters), clusters)
	}

	var sizes []int
	for _, group := range clusters {
		sizes = append(sizes, len(group))
	}
	total := 0
	for _, n := range sizes {
		total += n
	}
	if total != 3 {
		t.Errorf("Cluster sizes should sum to marker count, got %d", total)
	}
}
