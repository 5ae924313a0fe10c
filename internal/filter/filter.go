// Package filter narrows listing records by user-selected criteria.
//
// Apply is a pure function: logical AND across criteria, logical OR
// within a multi-valued criterion, stable order, no failure mode.
package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"flx-labs/stay-sip/internal/models"
)

// Criteria is one set of active filter constraints. A nil/empty field
// (or the literal "any"/"all" value) leaves that criterion inactive.
type Criteria struct {
	Lakes      []string
	Categories []string
	MinPrice   *float64
	MaxPrice   *float64
	Search     string

	TastingsOnly bool // wineries: only places offering tastings
	MinCapacity  *int // wedding venues: minimum guest capacity
}

// Apply returns the subset of records matching every active criterion,
// preserving the relative order of the input.
func Apply(records []models.ListingRecord, c Criteria) []models.ListingRecord {
	lakes := activeValues(c.Lakes)
	categories := activeValues(c.Categories)
	search := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]models.ListingRecord, 0, len(records))
	for _, r := range records {
		if !matchesSet(r.Lake, lakes) {
			continue
		}
		if !matchesAnySet(r.CategoryTerms(), categories) {
			continue
		}
		if !matchesPrice(r.PricePerNight, c.MinPrice, c.MaxPrice) {
			continue
		}
		if c.TastingsOnly && !r.Tasting {
			continue
		}
		if c.MinCapacity != nil && (r.Capacity == nil || *r.Capacity < *c.MinCapacity) {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// activeValues drops empty and "any"/"all" placeholder values; an empty
// result means the criterion is inactive.
func activeValues(vals []string) []string {
	out := vals[:0:0]
	for _, v := range vals {
		v = strings.TrimSpace(v)
		switch strings.ToLower(v) {
		case "", "any", "all":
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesSet(attr string, accepted []string) bool {
	if len(accepted) == 0 {
		return true
	}
	for _, v := range accepted {
		if strings.EqualFold(attr, v) {
			return true
		}
	}
	return false
}

// matchesAnySet reports whether any record term intersects the accepted
// values. A record with no terms only matches an inactive criterion.
func matchesAnySet(terms, accepted []string) bool {
	if len(accepted) == 0 {
		return true
	}
	for _, t := range terms {
		for _, v := range accepted {
			if strings.EqualFold(t, v) {
				return true
			}
		}
	}
	return false
}

// matchesPrice treats an unpriced record as matching only when no price
// bound is active.
func matchesPrice(price, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if price == nil {
		return false
	}
	if min != nil && *price < *min {
		return false
	}
	if max != nil && *price > *max {
		return false
	}
	return true
}

func matchesSearch(r models.ListingRecord, loweredQuery string) bool {
	for _, field := range []string{r.DisplayName(), r.Description, r.Notes, r.Summary} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}

// Option is one selectable filter value with its display label.
type Option struct {
	Value string
	Label string
}

var titler = cases.Title(language.English, cases.NoLower)

// Options derives the distinct lakes and category terms present in a
// record set, sorted, for populating the filter drop-downs.
func Options(records []models.ListingRecord) (lakes, categories []Option) {
	lakeSet := make(map[string]bool)
	catSet := make(map[string]bool)
	for _, r := range records {
		if r.Lake != "" {
			lakeSet[r.Lake] = true
		}
		for _, t := range r.CategoryTerms() {
			catSet[t] = true
		}
	}
	return toOptions(lakeSet), toOptions(catSet)
}

func toOptions(set map[string]bool) []Option {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)

	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: titler.String(v)})
	}
	return opts
}
