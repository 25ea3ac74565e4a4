package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/actuallystonmai/movie-recommender/internal/catalog"
)

func queryInt(q url.Values, key string, fallback, min, max int) (int, error) {
	s := q.Get(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < min || v > max {
		return 0, fmt.Errorf("invalid %s parameter", key)
	}
	return v, nil
}

// queryOptionalInt returns nil when the parameter is absent.
func queryOptionalInt(q url.Values, key string, min, max int) (*int, error) {
	if q.Get(key) == "" {
		return nil, nil
	}
	v, err := queryInt(q, key, 0, min, max)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func queryOptionalFloat(q url.Values, key string, min, max float64) (*float64, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < min || v > max {
		return nil, fmt.Errorf("invalid %s parameter", key)
	}
	return &v, nil
}

func queryInts(q url.Values, key string) ([]int, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid %s parameter", key)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseCriteria reads the candidate source parameters shared by list and
// ranking endpoints.
func parseCriteria(q url.Values, source catalog.Source) (catalog.Criteria, error) {
	page, err := queryInt(q, "page", 1, 1, 500)
	if err != nil {
		return catalog.Criteria{}, err
	}
	genres, err := queryInts(q, "genres")
	if err != nil {
		return catalog.Criteria{}, err
	}
	var movieID int64
	if s := q.Get("movie_id"); s != "" {
		movieID, err = strconv.ParseInt(s, 10, 64)
		if err != nil || movieID <= 0 {
			return catalog.Criteria{}, fmt.Errorf("invalid movie_id parameter")
		}
	}
	return catalog.Criteria{
		Source:   source,
		Query:    q.Get("q"),
		MovieID:  movieID,
		Page:     page,
		SortBy:   q.Get("sort_by"),
		GenreIDs: genres,
	}, nil
}

var errInvalidFilters = errors.New("invalid filters parameter: expected linked or off")
