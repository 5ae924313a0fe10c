package models

import "encoding/json"

// ID is a record identifier, unique within its collection.
// The data files are hand-edited and have used both string and numeric
// ids over time, so it unmarshals from either.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// ListingRecord holds one displayable item: a stay, winery, attraction,
// wedding venue, or itinerary entry. Only ID and a display name are
// guaranteed; everything else is optional and degrades to an empty
// placeholder in the UI.
type ListingRecord struct {
	ID       ID       `json:"id"`
	Name     string   `json:"name,omitempty"`
	Title    string   `json:"title,omitempty"` // itineraries use title instead of name
	Lake     string   `json:"lake,omitempty"`
	Category string   `json:"category,omitempty"`
	Type     string   `json:"type,omitempty"`
	Tags     []string `json:"tags,omitempty"`

	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`

	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Beds          int      `json:"beds,omitempty"`
	Guests        int      `json:"guests,omitempty"`
	Capacity      *int     `json:"capacity,omitempty"`
	Tasting       bool     `json:"tasting,omitempty"`
	Tour          bool     `json:"tour,omitempty"`

	Days        int  `json:"days,omitempty"`
	Stays       []ID `json:"stays,omitempty"`
	Wineries    []ID `json:"wineries,omitempty"`
	Attractions []ID `json:"attractions,omitempty"`
}

// DisplayName prefers Name, falling back to Title for itinerary entries.
func (r ListingRecord) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Title
}

// Blurb returns the best available descriptive text for cards and search.
func (r ListingRecord) Blurb() string {
	if r.Description != "" {
		return r.Description
	}
	if r.Notes != "" {
		return r.Notes
	}
	return r.Summary
}

// HasPrice reports whether a nightly price is present; Price returns it,
// 0 when absent. Templates need these since the field is a pointer.
func (r ListingRecord) HasPrice() bool { return r.PricePerNight != nil }

func (r ListingRecord) Price() float64 {
	if r.PricePerNight == nil {
		return 0
	}
	return *r.PricePerNight
}

// HasCapacity and CapacityValue mirror HasPrice for venue capacity.
func (r ListingRecord) HasCapacity() bool { return r.Capacity != nil }

func (r ListingRecord) CapacityValue() int {
	if r.Capacity == nil {
		return 0
	}
	return *r.Capacity
}

// HasLocation reports whether the record can be placed on the map.
func (r ListingRecord) HasLocation() bool {
	return r.Lat != nil && r.Lng != nil
}

// CategoryTerms returns the attribute set the category filter matches
// against: category, type, and tags combined.
func (r ListingRecord) CategoryTerms() []string {
	terms := make([]string, 0, len(r.Tags)+2)
	if r.Category != "" {
		terms = append(terms, r.Category)
	}
	if r.Type != "" {
		terms = append(terms, r.Type)
	}
	terms = append(terms, r.Tags...)
	return terms
}
