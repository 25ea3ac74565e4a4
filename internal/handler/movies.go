package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/actuallystonmai/movie-recommender/internal/catalog"
)

const sortByScore = "score"

// GET /movies/popular
func (h *Handler) GetPopularMovies(w http.ResponseWriter, r *http.Request) {
	h.listMovies(w, r, catalog.SourcePopular)
}

// GET /movies/discover
func (h *Handler) GetDiscoverMovies(w http.ResponseWriter, r *http.Request) {
	h.listMovies(w, r, catalog.SourceDiscover)
}

// GET /movies/search?q=
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	h.listMovies(w, r, catalog.SourceSearch)
}

// GET /movies/{movieID}/similar
func (h *Handler) GetSimilarMovies(w http.ResponseWriter, r *http.Request) {
	h.listMovies(w, r, catalog.SourceSimilar)
}

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request, source catalog.Source) {
	q := r.URL.Query()
	criteria, err := parseCriteria(q, source)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	if source == catalog.SourceSimilar {
		id, ok := movieIDParam(w, r)
		if !ok {
			return
		}
		criteria.MovieID = id
	}

	sortBy := q.Get("sort")
	if sortBy != "" && sortBy != sortByScore {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid sort parameter")
		return
	}

	movies, err := h.service.ListMovies(r.Context(), criteria, sortBy == sortByScore)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sortedBy := "catalog"
	if sortBy == sortByScore {
		sortedBy = sortByScore
	}
	writeJSON(w, http.StatusOK, MovieListResponse{
		Page:     criteria.Page,
		Results:  movies,
		SortedBy: sortedBy,
	})
}

// GET /movies/{movieID}
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	movie, err := h.service.MovieDetails(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

// GET /genres
func (h *Handler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.Genres(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GenresResponse{Genres: genres})
}

func movieIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid movie id")
		return 0, false
	}
	return id, true
}
