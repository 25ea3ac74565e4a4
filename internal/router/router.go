package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/actuallystonmai/movie-recommender/internal/handler"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Get("/health", healthCheck)
	r.Get("/genres", h.GetGenres)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/popular", h.GetPopularMovies)
		r.Get("/discover", h.GetDiscoverMovies)
		r.Get("/search", h.SearchMovies)
		r.Get("/{movieID}", h.GetMovie)
		r.Get("/{movieID}/similar", h.GetSimilarMovies)
	})

	r.Get("/rankings", h.GetRanking)
	r.Post("/rankings/batch", h.PostBatchRanking)

	r.Route("/settings", func(r chi.Router) {
		r.Get("/api-key", h.GetAPIKeyStatus)
		r.Put("/api-key", h.PutAPIKey)
	})

	r.NotFound(handler.NotFound)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
