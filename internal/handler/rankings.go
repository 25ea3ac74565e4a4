package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/actuallystonmai/movie-recommender/internal/catalog"
	"github.com/actuallystonmai/movie-recommender/internal/domain"
	"github.com/actuallystonmai/movie-recommender/internal/ranking"
	"github.com/actuallystonmai/movie-recommender/internal/service"
)

const (
	defaultDial     = 5
	filtersLinked   = "linked"
	filtersExplicit = "off"
)

// GET /rankings
func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	source, err := catalog.ParseSource(q.Get("source"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid source parameter")
		return
	}
	criteria, err := parseCriteria(q, source)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	weights, err := h.parseWeights(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	result, err := h.service.Rank(r.Context(), service.RankRequest{Criteria: criteria, Weights: weights})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := RankingResponse{
		Status:         result.Status,
		FavoriteGenres: result.FavoriteGenres,
		Results:        result.Movies,
		Weights:        weights,
		Metadata: domain.RankingMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Source:      string(criteria.Source),
			TotalCount:  len(result.Movies),
		},
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseWeights reads the dials. In linked mode (default) the dials double as
// filters; with filters=off only the explicit threshold parameters filter.
func (h *Handler) parseWeights(q url.Values) (domain.WeightConfig, error) {
	minYear := h.service.MinYear()

	pop, err := queryInt(q, "popularity", defaultDial, domain.MinDial, domain.MaxDial)
	if err != nil {
		return domain.WeightConfig{}, err
	}
	rating, err := queryInt(q, "rating", defaultDial, domain.MinDial, domain.MaxDial)
	if err != nil {
		return domain.WeightConfig{}, err
	}
	year, err := queryInt(q, "year", minYear, minYear, h.service.CurrentYear())
	if err != nil {
		return domain.WeightConfig{}, err
	}

	switch q.Get("filters") {
	case "", filtersLinked:
		return ranking.LinkedWeights(pop, rating, year, minYear), nil
	case filtersExplicit:
	default:
		return domain.WeightConfig{}, errInvalidFilters
	}

	w := domain.WeightConfig{PopularityWeight: pop, RatingWeight: rating, RecencyYear: year}
	if w.Filters.MinRating, err = queryOptionalFloat(q, "min_rating", 0, 10); err != nil {
		return domain.WeightConfig{}, err
	}
	if w.Filters.MinYear, err = queryOptionalInt(q, "min_year", 0, 9999); err != nil {
		return domain.WeightConfig{}, err
	}
	if w.Filters.PopularityFloor, err = queryOptionalInt(q, "popularity_floor", domain.MinDial, domain.MaxDial); err != nil {
		return domain.WeightConfig{}, err
	}
	return w, nil
}

type batchRankingRequest struct {
	Criteria catalog.Criteria      `json:"criteria"`
	Weights  []domain.WeightConfig `json:"weights"`
	// Filters is "linked" (default) or "off", as on GET /rankings.
	Filters string `json:"filters"`
}

// POST /rankings/batch
func (h *Handler) PostBatchRanking(w http.ResponseWriter, r *http.Request) {
	var req batchRankingRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be a JSON batch ranking request")
		return
	}

	switch req.Filters {
	case "", filtersLinked:
		minYear := h.service.MinYear()
		for i, cfg := range req.Weights {
			req.Weights[i] = ranking.LinkedWeights(cfg.PopularityWeight, cfg.RatingWeight, cfg.RecencyYear, minYear)
		}
	case filtersExplicit:
	default:
		writeError(w, http.StatusBadRequest, "invalid_parameter", errInvalidFilters.Error())
		return
	}

	result, err := h.service.RankBatch(r.Context(), req.Criteria, req.Weights)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
