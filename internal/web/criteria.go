package web

import (
	"net/url"
	"strconv"

	"flx-labs/stay-sip/internal/filter"
)

// ParseCriteria maps query parameters onto filter criteria. Unparsable
// numeric values leave that criterion inactive; filtering never fails.
func ParseCriteria(q url.Values) filter.Criteria {
	c := filter.Criteria{
		Lakes:      q["lake"],
		Categories: q["category"],
		Search:     q.Get("q"),
	}
	if f, ok := parseFloat(q.Get("min_price")); ok {
		c.MinPrice = &f
	}
	if f, ok := parseFloat(q.Get("max_price")); ok {
		c.MaxPrice = &f
	}
	if n, ok := parseInt(q.Get("min_capacity")); ok {
		c.MinCapacity = &n
	}
	if v, err := strconv.ParseBool(q.Get("tastings")); err == nil {
		c.TastingsOnly = v
	}
	return c
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
