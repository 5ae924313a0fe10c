package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flx-labs/stay-sip/internal/catalog"
	"flx-labs/stay-sip/internal/config"
	"flx-labs/stay-sip/internal/mapview"
	"flx-labs/stay-sip/internal/models"
)

func newTestServer(t *testing.T, dataDir string) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loader, err := catalog.NewLoader(dataDir, logger)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	srv, err := New(config.DefaultSiteConfig(), loader, logger)
	if err != nil {
		t.Fatalf("New server failed: %v", err)
	}
	return srv
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
}

func seedData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "stays", `[
		{"id": "s1", "name": "Seneca Lodge", "lake": "Seneca", "type": "lodge", "price_per_night": 140, "lat": 42.37, "lng": -76.88},
		{"id": "s2", "name": "Bluff Point Cottage", "lake": "Keuka", "type": "cottage", "price_per_night": 225}
	]`)
	writeFixture(t, dir, "wineries", `[
		{"id": "w1", "name": "Keuka Cellars", "lake": "Keuka", "category": "winery", "tasting": true, "lat": 42.45, "lng": -77.21}
	]`)
	writeFixture(t, dir, "attractions", `[]`)
	writeFixture(t, dir, "wedding_venues", `[]`)
	writeFixture(t, dir, "itineraries", `[
		{"id": "i1", "title": "Keuka Weekend", "lake": "Keuka", "days": 3, "summary": "Two days on the bluff.", "stays": ["s2"], "wineries": ["w1"]}
	]`)
	return dir
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)
	return rr
}

func TestHomePage(t *testing.T) {
	srv := newTestServer(t, seedData(t))
	rr := get(t, srv, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Stay &amp; Sip Finger Lakes") {
		t.Errorf("Home page missing site title")
	}
	if !strings.Contains(body, "2 listings") {
		t.Errorf("Home page missing stays count")
	}
}

func TestBrowsePageAppliesFilters(t *testing.T) {
	srv := newTestServer(t, seedData(t))

	rr := get(t, srv, "/browse/stays?lake=Keuka")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Bluff Point Cottage") {
		t.Errorf("Keuka filter should keep the cottage")
	}
	if strings.Contains(body, "Seneca Lodge") {
		t.Errorf("Keuka filter should drop the Seneca stay")
	}
}

func TestBrowsePageEmptyState(t *testing.T) {
	srv := newTestServer(t, seedData(t))
	rr := get(t, srv, "/browse/stays?q=nomatchanywhere")
	if rr.Code != http.StatusOK {
		t.Fatalf("Empty result should still render, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No results. Try broadening filters.") {
		t.Errorf("Missing empty-state message")
	}
}

func TestBrowseUnknownCollectionIs404(t *testing.T) {
	srv := newTestServer(t, seedData(t))
	if rr := get(t, srv, "/browse/castles"); rr.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rr.Code)
	}
}

func TestBrowseUnavailableCollectionDegrades(t *testing.T) {
	// Empty data dir: every source file is missing.
	srv := newTestServer(t, t.TempDir())
	rr := get(t, srv, "/browse/stays")
	if rr.Code != http.StatusOK {
		t.Fatalf("Unavailable data must not crash the page, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "temporarily unavailable") {
		t.Errorf("Missing unavailable empty-state message")
	}
}

func TestItinerariesPageResolvesReferences(t *testing.T) {
	srv := newTestServer(t, seedData(t))
	rr := get(t, srv, "/itineraries")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Keuka Weekend") {
		t.Errorf("Missing itinerary title")
	}
	if !strings.Contains(body, "Bluff Point Cottage") || !strings.Contains(body, "Keuka Cellars") {
		t.Errorf("Itinerary references not resolved")
	}
}

func TestAPICollectionFiltered(t *testing.T) {
	srv := newTestServer(t, seedData(t))
	rr := get(t, srv, "/api/v1/collections/stays?max_price=200")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp struct {
		Collection string                 `json:"collection"`
		Count      int                    `json:"count"`
		Records    []models.ListingRecord `json:"records"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if resp.Collection != "stays" || resp.Count != 1 {
		t.Fatalf("Expected 1 stay under $200, got %+v", resp)
	}
	if resp.Records[0].ID != "s1" {
		t.Errorf("Expected s1, got %s", resp.Records[0].ID)
	}
}

func TestAPICollectionEmptyResultIsArray(t *testing.T) {
	srv := newTestServer(t, seedData(t))
	rr := get(t, srv, "/api/v1/collections/stays?q=zzz")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"records":[]`) {
		t.Errorf("Empty result should serialize as [], got %s", rr.Body.String())
	}
}

func TestAPICollectionErrors(t *testing.T) {
	srv := newTestServer(t, seedData(t))
	if rr := get(t, srv, "/api/v1/collections/castles"); rr.Code != http.StatusNotFound {
		t.Errorf("Unknown collection: expected 404, got %d", rr.Code)
	}

	empty := newTestServer(t, t.TempDir())
	rr := get(t, empty, "/api/v1/collections/stays")
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("Missing source: expected 503, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "error") {
		t.Errorf("Expected JSON error body, got %s", rr.Body.String())
	}
}

func TestAPIMarkersExcludeUnlocatedRecords(t *testing.T) {
	srv := newTestServer(t, seedData(t))
	rr := get(t, srv, "/api/v1/markers")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp struct {
		Viewport struct {
			Lat  float64 `json:"lat"`
			Zoom int     `json:"zoom"`
		} `json:"viewport"`
		Markers []mapview.Marker `json:"markers"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	// s2 has no coordinates, so only s1 and w1 appear.
	if len(resp.Markers) != 2 {
		t.Fatalf("Expected 2 markers, got %d", len(resp.Markers))
	}
	if resp.Viewport.Lat != 42.6 || resp.Viewport.Zoom != 8 {
		t.Errorf("Default viewport wrong: %+v", resp.Viewport)
	}
}

func TestAPIFilterOptions(t *testing.T) {
	srv := newTestServer(t, seedData(t))
	rr := get(t, srv, "/api/v1/filters/options")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	var resp map[string]map[string][]struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	lakes := resp["stays"]["lakes"]
	if len(lakes) != 2 {
		t.Fatalf("Expected 2 stay lakes, got %v", lakes)
	}
}

func TestParseCriteria(t *testing.T) {
	q := url.Values{}
	q.Set("q", "riesling")
	q.Add("lake", "Keuka")
	q.Add("lake", "Seneca")
	q.Set("max_price", "250")
	q.Set("min_capacity", "100")
	q.Set("tastings", "true")

	c := ParseCriteria(q)
	if c.Search != "riesling" {
		t.Errorf("Search wrong: %q", c.Search)
	}
	if len(c.Lakes) != 2 {
		t.Errorf("Expected 2 lakes, got %v", c.Lakes)
	}
	if c.MaxPrice == nil || *c.MaxPrice != 250 {
		t.Errorf("MaxPrice wrong: %v", c.MaxPrice)
	}
	if c.MinCapacity == nil || *c.MinCapacity != 100 {
		t.Errorf("MinCapacity wrong: %v", c.MinCapacity)
	}
	if !c.TastingsOnly {
		t.Errorf("TastingsOnly should be set")
	}
}

func TestParseCriteriaIgnoresGarbageNumbers(t *testing.T) {
	q := url.Values{}
	q.Set("max_price", "cheap")
	q.Set("min_capacity", "lots")
	q.Set("tastings", "maybe")

	c := ParseCriteria(q)
	if c.MaxPrice != nil || c.MinCapacity != nil || c.TastingsOnly {
		t.Errorf("Unparsable values should leave criteria inactive: %+v", c)
	}
}
