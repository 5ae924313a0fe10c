package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flx-labs/stay-sip/internal/catalog"
	"flx-labs/stay-sip/internal/config"
	"flx-labs/stay-sip/internal/filter"
	"flx-labs/stay-sip/internal/itinerary"
	"flx-labs/stay-sip/internal/models"
)

// pageData is the shared envelope every page template receives.
type pageData struct {
	Site   *config.SiteConfig
	Active string // nav highlight
}

type homeData struct {
	pageData
	Counts map[string]int
	Order  []string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	collections := s.loader.LoadAll()

	counts := make(map[string]int, len(collections))
	for name, records := range collections {
		counts[name] = len(records)
	}

	s.render(w, "home", homeData{
		pageData: pageData{Site: s.site, Active: "home"},
		Counts:   counts,
		Order:    catalog.Names,
	})
}

type browseData struct {
	pageData
	Collection  string
	Heading     string
	Records     []models.ListingRecord
	Lakes       []filter.Option
	Categories  []filter.Option
	Query       queryEcho
	Unavailable bool
}

// queryEcho carries the submitted filter values back into the form.
type queryEcho struct {
	Lake        string
	Category    string
	MaxPrice    string
	MinCapacity string
	Tastings    bool
	Search      string
}

func (s *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")

	records, err := s.loader.Load(name)
	switch {
	case errors.Is(err, catalog.ErrUnknownCollection):
		http.NotFound(w, r)
		return
	case errors.Is(err, catalog.ErrUnavailable):
		// Degrade to an empty-state page; never fail the whole view.
		s.logger.Warn("collection unavailable", "collection", name, "error", err)
		s.render(w, "browse", browseData{
			pageData:    pageData{Site: s.site, Active: name},
			Collection:  name,
			Heading:     displayTitle(name),
			Unavailable: true,
		})
		return
	case err != nil:
		http.Error(w, "failed to load collection", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	lakes, categories := filter.Options(records)
	filtered := filter.Apply(records, ParseCriteria(q))

	s.render(w, "browse", browseData{
		pageData:   pageData{Site: s.site, Active: name},
		Collection: name,
		Heading:    displayTitle(name),
		Records:    filtered,
		Lakes:      lakes,
		Categories: categories,
		Query: queryEcho{
			Lake:        q.Get("lake"),
			Category:    q.Get("category"),
			MaxPrice:    q.Get("max_price"),
			MinCapacity: q.Get("min_capacity"),
			Tastings:    q.Get("tastings") == "true",
			Search:      q.Get("q"),
		},
	})
}

type mapData struct {
	pageData
	Map config.MapConfig
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	s.render(w, "map", mapData{
		pageData: pageData{Site: s.site, Active: "map"},
		Map:      s.site.Map,
	})
}

type itinerariesData struct {
	pageData
	Trips       []itinerary.Resolved
	Unavailable bool
}

func (s *Server) handleItineraries(w http.ResponseWriter, r *http.Request) {
	itins, err := s.loader.Load("itineraries")
	if err != nil {
		s.logger.Warn("itineraries unavailable", "error", err)
		s.render(w, "itineraries", itinerariesData{
			pageData:    pageData{Site: s.site, Active: "itineraries"},
			Unavailable: true,
		})
		return
	}

	collections := s.loader.LoadAll()
	itins = filter.Apply(itins, ParseCriteria(r.URL.Query()))
	trips := itinerary.ResolveAll(itins,
		collections["stays"], collections["wineries"], collections["attractions"])

	s.render(w, "itineraries", itinerariesData{
		pageData: pageData{Site: s.site, Active: "itineraries"},
		Trips:    trips,
	})
}
