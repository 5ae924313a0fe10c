// Package itinerary resolves the record references inside trip-idea
// entries. Itineraries point at stays, wineries, and attractions by id;
// dangling ids are dropped silently.
package itinerary

import "flx-labs/stay-sip/internal/models"

// Resolved is one itinerary with its referenced records attached, in
// reference order.
type Resolved struct {
	Itinerary   models.ListingRecord
	Stays       []models.ListingRecord
	Wineries    []models.ListingRecord
	Attractions []models.ListingRecord
}

// Resolve attaches the referenced records to one itinerary.
func Resolve(itin models.ListingRecord, stays, wineries, attractions []models.ListingRecord) Resolved {
	return Resolved{
		Itinerary:   itin,
		Stays:       pick(itin.Stays, indexByID(stays)),
		Wineries:    pick(itin.Wineries, indexByID(wineries)),
		Attractions: pick(itin.Attractions, indexByID(attractions)),
	}
}

// ResolveAll resolves every itinerary in order.
func ResolveAll(itins, stays, wineries, attractions []models.ListingRecord) []Resolved {
	stayIdx := indexByID(stays)
	wineryIdx := indexByID(wineries)
	attrIdx := indexByID(attractions)

	out := make([]Resolved, 0, len(itins))
	for _, itin := range itins {
		out = append(out, Resolved{
			Itinerary:   itin,
			Stays:       pick(itin.Stays, stayIdx),
			Wineries:    pick(itin.Wineries, wineryIdx),
			Attractions: pick(itin.Attractions, attrIdx),
		})
	}
	return out
}

func indexByID(records []models.ListingRecord) map[models.ID]models.ListingRecord {
	idx := make(map[models.ID]models.ListingRecord, len(records))
	for _, r := range records {
		if _, ok := idx[r.ID]; !ok {
			idx[r.ID] = r
		}
	}
	return idx
}

func pick(ids []models.ID, idx map[models.ID]models.ListingRecord) []models.ListingRecord {
	out := make([]models.ListingRecord, 0, len(ids))
	for _, id := range ids {
		if r, ok := idx[id]; ok {
			out = append(out, r)
		}
	}
	return out
}
