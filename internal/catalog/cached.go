package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
	"github.com/actuallystonmai/movie-recommender/internal/logging"
)

const keyPrefix = "catalog:"

// ResponseStore is the key/value cache behind Cached.
type ResponseStore interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Cached memoizes another Catalog. Concurrent misses for the same key share a
// single upstream call. Cache failures are logged and never fail a request.
type Cached struct {
	next   Catalog
	store  ResponseStore
	ttl    time.Duration
	group  singleflight.Group
	logger zerolog.Logger
}

func NewCached(next Catalog, store ResponseStore, ttl time.Duration) *Cached {
	return &Cached{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logging.WithComponent("catalog_cache"),
	}
}

func (c *Cached) FetchCandidates(ctx context.Context, crit Criteria) ([]domain.Movie, error) {
	crit, err := crit.Normalize()
	if err != nil {
		return nil, err
	}
	return cachedCall(ctx, c, keyPrefix+"candidates:"+crit.Key(), func() ([]domain.Movie, error) {
		return c.next.FetchCandidates(ctx, crit)
	})
}

func (c *Cached) MovieDetails(ctx context.Context, id int64) (*domain.Movie, error) {
	if id <= 0 {
		return nil, domain.ErrMissingMovieID
	}
	return cachedCall(ctx, c, fmt.Sprintf("%smovie:%d", keyPrefix, id), func() (*domain.Movie, error) {
		return c.next.MovieDetails(ctx, id)
	})
}

func (c *Cached) Genres(ctx context.Context) ([]domain.Genre, error) {
	return cachedCall(ctx, c, keyPrefix+"genres", func() ([]domain.Genre, error) {
		return c.next.Genres(ctx)
	})
}

func cachedCall[T any](ctx context.Context, c *Cached, key string, load func() (T, error)) (T, error) {
	var cached T
	found, err := c.store.GetJSON(ctx, key, &cached)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache get failed")
	}
	if found {
		return cached, nil
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		val, err := load()
		if err != nil {
			return val, err
		}
		if err := c.store.SetJSON(ctx, key, val, c.ttl); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
		return val, nil
	})
	if shared {
		c.logger.Debug().Str("key", key).Msg("shared upstream call")
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
