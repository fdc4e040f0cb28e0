package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/courtsideai/courtside/internal/api/respond"
	"github.com/courtsideai/courtside/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and
// the /nba routes.
func NewRouter(h *Handler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Authorization"},
		ExposedHeaders:   []string{"X-Process-Time"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Routes ---

	r.Get("/", h.Root)
	r.Get("/health", h.HealthCheck)

	r.Route("/nba", func(r chi.Router) {
		r.Get("/player-stats", h.PlayerStats)
		r.Get("/team-stats", h.TeamStats)
		r.Get("/standings", h.Standings)
		r.Get("/games", h.Games)
		r.Get("/team-roster", h.TeamRoster)
		r.Get("/h2h", h.H2H)
	})

	// Swagger UI over the embedded OpenAPI document.
	r.Get("/docs/openapi.json", h.OpenAPISpec)
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/openapi.json"),
	))

	// Unknown paths still get a JSON body.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, http.StatusNotFound, "Unknown route", map[string]any{
			"path": req.URL.Path,
		})
	})

	return r
}
