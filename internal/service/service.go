package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/actuallystonmai/movie-recommender/internal/catalog"
	"github.com/actuallystonmai/movie-recommender/internal/domain"
	"github.com/actuallystonmai/movie-recommender/internal/logging"
	"github.com/actuallystonmai/movie-recommender/internal/ranking"
)

const (
	batchConcurrency    = 8
	maxBatchSize        = 20
	catalogCachePattern = "catalog:*"
)

type KeyStore interface {
	SetAPIKey(ctx context.Context, key string) error
	IsConfigured(ctx context.Context) (bool, error)
}

// Invalidator drops cached catalog responses.
type Invalidator interface {
	Clear(ctx context.Context, pattern string) error
}

type Service struct {
	catalog     catalog.Catalog
	engine      *ranking.Engine
	keys        KeyStore
	invalidator Invalidator
	logger      zerolog.Logger
}

func NewService(cat catalog.Catalog, engine *ranking.Engine, keys KeyStore, invalidator Invalidator) *Service {
	return &Service{
		catalog:     cat,
		engine:      engine,
		keys:        keys,
		invalidator: invalidator,
		logger:      logging.WithComponent("service"),
	}
}

type RankRequest struct {
	Criteria catalog.Criteria
	Weights  domain.WeightConfig
}

// Rank fetches candidates and ranks them. Catalog failures are returned as
// errors; an empty ranking is a successful result with StatusNoResults.
func (s *Service) Rank(ctx context.Context, req RankRequest) (*domain.Ranking, error) {
	if err := s.ValidateWeights(req.Weights); err != nil {
		return nil, err
	}

	candidates, err := s.catalog.FetchCandidates(ctx, req.Criteria)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	result := s.engine.Rank(candidates, req.Weights)
	logging.Ctx(ctx).Debug().
		Str("source", string(req.Criteria.Source)).
		Int("candidates", len(candidates)).
		Int("ranked", len(result.Movies)).
		Str("status", string(result.Status)).
		Msg("ranking computed")
	return result, nil
}

func (s *Service) ValidateWeights(w domain.WeightConfig) error {
	return w.Validate(s.engine.Config().MinYear, s.engine.CurrentYear())
}

// RankBatch ranks one candidate set under several weight configurations.
// Candidates are fetched once; rankings run concurrently with a bounded pool.
func (s *Service) RankBatch(ctx context.Context, criteria catalog.Criteria, weights []domain.WeightConfig) (*domain.BatchRankResponse, error) {
	start := time.Now()
	if len(weights) == 0 || len(weights) > maxBatchSize {
		return nil, fmt.Errorf("%w: batch needs 1 to %d weight configurations, got %d",
			domain.ErrInvalidWeights, maxBatchSize, len(weights))
	}

	candidates, err := s.catalog.FetchCandidates(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	results := make([]domain.BatchRankResult, len(weights))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, w := range weights {
		i, w := i, w
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.rankForBatch(i, candidates, w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// summary
	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.BatchSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	return &domain.BatchRankResponse{
		CandidateCount: len(candidates),
		Results:        results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
		Metadata: domain.RankingMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Source:      string(criteria.Source),
			TotalCount:  len(results),
		},
	}, nil
}

// Ranks a single configuration, capturing validation errors.
func (s *Service) rankForBatch(idx int, candidates []domain.Movie, w domain.WeightConfig) domain.BatchRankResult {
	if err := s.ValidateWeights(w); err != nil {
		s.logger.Debug().Int("index", idx).Err(err).Msg("batch: invalid weights")
		code, msg := CategorizeError(err)
		return domain.BatchRankResult{
			Index:   idx,
			Weights: w,
			Status:  domain.BatchFailed,
			Error:   code,
			Message: msg,
		}
	}
	return domain.BatchRankResult{
		Index:   idx,
		Weights: w,
		Ranking: s.engine.Rank(candidates, w),
		Status:  domain.BatchSuccess,
	}
}

// ListMovies returns catalog movies annotated with the fixed quality score.
// Catalog order is kept unless sortByScore is set.
func (s *Service) ListMovies(ctx context.Context, criteria catalog.Criteria, sortByScore bool) ([]domain.ScoredMovie, error) {
	movies, err := s.catalog.FetchCandidates(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("fetch movies: %w", err)
	}
	scored := s.engine.QualityScores(movies)
	if sortByScore {
		ranking.SortByScore(scored)
	}
	return scored, nil
}

func (s *Service) MovieDetails(ctx context.Context, id int64) (*domain.Movie, error) {
	m, err := s.catalog.MovieDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch movie %d: %w", id, err)
	}
	return m, nil
}

func (s *Service) Genres(ctx context.Context) ([]domain.Genre, error) {
	genres, err := s.catalog.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch genres: %w", err)
	}
	return genres, nil
}

// SetAPIKey stores the catalog credential and drops responses cached under
// the previous one.
func (s *Service) SetAPIKey(ctx context.Context, key string) error {
	if err := s.keys.SetAPIKey(ctx, key); err != nil {
		return err
	}
	if s.invalidator != nil {
		if err := s.invalidator.Clear(ctx, catalogCachePattern); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
		}
	}
	s.logger.Info().Msg("catalog api key updated")
	return nil
}

func (s *Service) APIKeyConfigured(ctx context.Context) (bool, error) {
	return s.keys.IsConfigured(ctx)
}

// CategorizeError maps an error to a stable code and user-facing message.
func CategorizeError(err error) (string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidWeights):
		return "invalid_weights", err.Error()
	case errors.Is(err, domain.ErrEmptyQuery):
		return "invalid_parameter", "search query must not be empty"
	case errors.Is(err, domain.ErrMissingMovieID):
		return "invalid_parameter", "movie id is required"
	case errors.Is(err, domain.ErrUnknownSource):
		return "invalid_parameter", "unknown candidate source"
	case errors.Is(err, domain.ErrMovieNotFound):
		return "movie_not_found", "movie not found"
	case errors.Is(err, domain.ErrAPIKeyMissing):
		return "api_key_missing", "catalog api key is not configured"
	case catalog.IsAPIError(err):
		return "catalog_error", "movie catalog returned an error"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "request_timeout", "request timed out, please try again"
	default:
		return "internal_error", "an unexpected error occurred"
	}
}

// CurrentYear is the upper bound of the recency dial.
func (s *Service) CurrentYear() int {
	return s.engine.CurrentYear()
}

// MinYear is the floor of the recency dial.
func (s *Service) MinYear() int {
	return s.engine.Config().MinYear
}
