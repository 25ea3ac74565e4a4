package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
	"github.com/actuallystonmai/movie-recommender/internal/logging"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultLanguage = "fr-FR"
	defaultTimeout  = 10 * time.Second
)

// KeyProvider resolves the API credential at call time, so a key set after
// startup is picked up without restarting.
type KeyProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// StaticKey is a fixed credential, typically from configuration.
type StaticKey string

func (k StaticKey) APIKey(context.Context) (string, error) {
	if strings.TrimSpace(string(k)) == "" {
		return "", domain.ErrAPIKeyMissing
	}
	return string(k), nil
}

type TMDBConfig struct {
	BaseURL  string
	Language string
	Region   string
	// RateLimit is the outbound request budget per second; 0 disables it.
	RateLimit float64
	Timeout   time.Duration
}

// TMDB is the remote catalog client.
type TMDB struct {
	baseURL  string
	language string
	region   string
	keys     KeyProvider
	http     *http.Client
	limiter  *rate.Limiter
	logger   zerolog.Logger
}

func NewTMDB(cfg TMDBConfig, keys KeyProvider) *TMDB {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(1, int(cfg.RateLimit)))
	}
	return &TMDB{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		language: cfg.Language,
		region:   cfg.Region,
		keys:     keys,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  limiter,
		logger:   logging.WithComponent("tmdb"),
	}
}

type pageResponse struct {
	Page         int            `json:"page"`
	Results      []domain.Movie `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type detailsResponse struct {
	domain.Movie
	Genres []domain.Genre `json:"genres"`
}

type genresResponse struct {
	Genres []domain.Genre `json:"genres"`
}

func (t *TMDB) FetchCandidates(ctx context.Context, c Criteria) ([]domain.Movie, error) {
	c, err := c.Normalize()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(c.Page))

	var endpoint string
	switch c.Source {
	case SourcePopular:
		endpoint = "/movie/popular"
	case SourceDiscover:
		endpoint = "/discover/movie"
		params.Set("sort_by", c.SortBy)
		if len(c.GenreIDs) > 0 {
			params.Set("with_genres", joinInts(c.GenreIDs, ","))
		}
	case SourceSearch:
		endpoint = "/search/movie"
		params.Set("query", c.Query)
	case SourceSimilar:
		endpoint = fmt.Sprintf("/movie/%d/similar", c.MovieID)
	}

	var resp pageResponse
	if err := t.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []domain.Movie{}
	}
	return resp.Results, nil
}

func (t *TMDB) MovieDetails(ctx context.Context, id int64) (*domain.Movie, error) {
	if id <= 0 {
		return nil, domain.ErrMissingMovieID
	}
	var resp detailsResponse
	if err := t.get(ctx, fmt.Sprintf("/movie/%d", id), url.Values{}, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	movie := resp.Movie
	if len(movie.GenreIDs) == 0 {
		movie.GenreIDs = make([]int, 0, len(resp.Genres))
		for _, g := range resp.Genres {
			movie.GenreIDs = append(movie.GenreIDs, g.ID)
		}
	}
	return &movie, nil
}

func (t *TMDB) Genres(ctx context.Context) ([]domain.Genre, error) {
	var resp genresResponse
	if err := t.get(ctx, "/genre/movie/list", url.Values{}, &resp); err != nil {
		return nil, err
	}
	if resp.Genres == nil {
		resp.Genres = []domain.Genre{}
	}
	return resp.Genres, nil
}

func (t *TMDB) get(ctx context.Context, endpoint string, params url.Values, dest any) error {
	key, err := t.keys.APIKey(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return domain.ErrAPIKeyMissing
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for rate limiter: %w", err)
	}

	params.Set("api_key", key)
	params.Set("language", t.language)
	if t.region != "" {
		params.Set("region", t.region)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	t.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("catalog request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Endpoint: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
