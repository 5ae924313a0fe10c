// Package mapview assembles map markers from the listing collections.
// Records without coordinates stay on the card pages but never reach
// the map; itineraries have no physical location at all.
package mapview

import (
	"github.com/mmcloughlin/geohash"

	"flx-labs/stay-sip/internal/models"
)

// cellPrecision truncates marker geohashes to ~5km cells so the UI can
// cluster nearby markers.
const cellPrecision = 5

// Marker is one map point, JSON-shaped for the /api/v1/markers endpoint.
type Marker struct {
	Name string  `json:"name"`
	Kind string  `json:"kind"`
	Lake string  `json:"lake,omitempty"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Cell string  `json:"cell"`
	Link string  `json:"link,omitempty"`
}

// kinds maps collection names to marker labels, in display order.
var kinds = []struct {
	collection string
	label      string
}{
	{"stays", "Stay"},
	{"wineries", "Winery"},
	{"attractions", "Attraction"},
	{"wedding_venues", "Wedding Venue"},
}

// Markers flattens the located records of all mappable collections.
func Markers(collections map[string][]models.ListingRecord) []Marker {
	var out []Marker
	for _, k := range kinds {
		for _, r := range collections[k.collection] {
			if !r.HasLocation() {
				continue
			}
			cell := geohash.Encode(*r.Lat, *r.Lng)
			if len(cell) > cellPrecision {
				cell = cell[:cellPrecision]
			}
			out = append(out, Marker{
				Name: r.DisplayName(),
				Kind: k.label,
				Lake: r.Lake,
				Lat:  *r.Lat,
				Lng:  *r.Lng,
				Cell: cell,
				Link: r.Link,
			})
		}
	}
	return out
}

// Cluster groups markers by geohash cell, preserving marker order
// within each cell.
func Cluster(markers []Marker) map[string][]Marker {
	out := make(map[string][]Marker)
	for _, m := range markers {
		out[m.Cell] = append(out[m.Cell], m)
	}
	return out
}
