package chat

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/courtsideai/courtside/internal/api"
	"github.com/courtsideai/courtside/internal/api/respond"
	"github.com/courtsideai/courtside/internal/config"
)

// NewRouter creates the chat service router. CORS is permissive: the chat UI
// is served from arbitrary origins and OPTIONS preflights must succeed.
func NewRouter(h *Handler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(api.TimingMiddleware)

	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		// Preflights answer 200 with an empty body.
		OptionsSuccessStatus: http.StatusOK,
	})
	r.Use(c.Handler)

	r.Post("/chat", h.Chat)
	r.Get("/chat", h.Chat)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]any{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, http.StatusNotFound, "Unknown route", map[string]any{
			"path": req.URL.Path,
		})
	})

	return r
}
