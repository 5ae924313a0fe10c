package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"flx-labs/stay-sip/internal/catalog"
	"flx-labs/stay-sip/internal/config"
)

// pages are the template files layered on top of base.html.
var pages = []string{"home", "browse", "map", "itineraries"}

// Server renders the card UI and serves the JSON API. Collections are
// loaded per request and passed down explicitly; the server itself
// holds no record state.
type Server struct {
	site      *config.SiteConfig
	loader    *catalog.Loader
	logger    *slog.Logger
	router    chi.Router
	templates map[string]*template.Template
}

// New builds the server, parsing each page template against the shared
// base layout separately to avoid block collisions.
func New(site *config.SiteConfig, loader *catalog.Loader, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	base := template.New("base.html").Funcs(template.FuncMap{
		"title": displayTitle,
	})
	base, err := base.ParseFS(Assets, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base template: %w", err)
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		t, err = t.ParseFS(Assets, "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		templates[page] = t
	}

	s := &Server{
		site:      site,
		loader:    loader,
		logger:    logger,
		templates: templates,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, RequestLogger(s.logger), chimw.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/browse/{collection}", s.handleBrowse)
	r.Get("/map", s.handleMap)
	r.Get("/itineraries", s.handleItineraries)

	staticFS, _ := fs.Sub(Assets, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
			MaxAge:         300,
		}))
		r.Get("/collections/{name}", s.apiCollection)
		r.Get("/markers", s.apiMarkers)
		r.Get("/filters/options", s.apiFilterOptions)
	})

	s.router = r
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// render executes one page template over the shared base layout.
func (s *Server) render(w http.ResponseWriter, page string, data any) {
	t, ok := s.templates[page]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "base.html", data); err != nil {
		s.logger.Error("template error", "page", page, "error", err)
	}
}

// displayTitle maps a collection name to its page heading.
func displayTitle(collection string) string {
	switch collection {
	case "stays":
		return "Stays"
	case "wineries":
		return "Wineries & Distilleries"
	case "attractions":
		return "Attractions"
	case "wedding_venues":
		return "Wedding Venues"
	case "itineraries":
		return "Trip Ideas"
	}
	return collection
}
