package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flx-labs/stay-sip/internal/catalog"
	"flx-labs/stay-sip/internal/filter"
	"flx-labs/stay-sip/internal/mapview"
	"flx-labs/stay-sip/internal/models"
)

func respondJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

type collectionResponse struct {
	Collection string                 `json:"collection"`
	Count      int                    `json:"count"`
	Records    []models.ListingRecord `json:"records"`
}

func (s *Server) apiCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	records, err := s.loader.Load(name)
	switch {
	case errors.Is(err, catalog.ErrUnknownCollection):
		writeJSONError(w, http.StatusNotFound, "unknown collection: "+name)
		return
	case errors.Is(err, catalog.ErrUnavailable):
		writeJSONError(w, http.StatusServiceUnavailable, "collection data unavailable")
		return
	case err != nil:
		writeJSONError(w, http.StatusInternalServerError, "failed to load collection")
		return
	}

	filtered := filter.Apply(records, ParseCriteria(r.URL.Query()))
	if filtered == nil {
		filtered = []models.ListingRecord{} // empty result is valid, render []
	}
	respondJSON(w, http.StatusOK, collectionResponse{
		Collection: name,
		Count:      len(filtered),
		Records:    filtered,
	})
}

type markersResponse struct {
	Viewport struct {
		Lat  float64 `json:"lat"`
		Lng  float64 `json:"lng"`
		Zoom int     `json:"zoom"`
	} `json:"viewport"`
	Markers []mapview.Marker `json:"markers"`
}

func (s *Server) apiMarkers(w http.ResponseWriter, r *http.Request) {
	collections := s.loader.LoadAll()
	for name, records := range collections {
		collections[name] = filter.Apply(records, ParseCriteria(r.URL.Query()))
	}

	markers := mapview.Markers(collections)
	if markers == nil {
		markers = []mapview.Marker{}
	}

	var resp markersResponse
	resp.Viewport.Lat = s.site.Map.Lat
	resp.Viewport.Lng = s.site.Map.Lng
	resp.Viewport.Zoom = s.site.Map.Zoom
	resp.Markers = markers
	respondJSON(w, http.StatusOK, resp)
}

type optionJSON struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (s *Server) apiFilterOptions(w http.ResponseWriter, r *http.Request) {
	collections := s.loader.LoadAll()

	out := make(map[string]map[string][]optionJSON, len(collections))
	for name, records := range collections {
		lakes, categories := filter.Options(records)
		out[name] = map[string][]optionJSON{
			"lakes":      toOptionJSON(lakes),
			"categories": toOptionJSON(categories),
		}
	}
	respondJSON(w, http.StatusOK, out)
}

func toOptionJSON(opts []filter.Option) []optionJSON {
	out := make([]optionJSON, 0, len(opts))
	for _, o := range opts {
		out = append(out, optionJSON{Value: o.Value, Label: o.Label})
	}
	return out
}
