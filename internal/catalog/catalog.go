package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

// Catalog supplies raw movie candidates. Implementations own transport and
// caching; callers only see resolved records or an error.
type Catalog interface {
	FetchCandidates(ctx context.Context, c Criteria) ([]domain.Movie, error)
	MovieDetails(ctx context.Context, id int64) (*domain.Movie, error)
	Genres(ctx context.Context) ([]domain.Genre, error)
}

type Source string

const (
	SourcePopular  Source = "popular"
	SourceDiscover Source = "discover"
	SourceSearch   Source = "search"
	SourceSimilar  Source = "similar"
)

const DefaultSortBy = "popularity.desc"

type Criteria struct {
	Source   Source `json:"source"`
	Query    string `json:"query,omitempty"`
	MovieID  int64  `json:"movie_id,omitempty"`
	Page     int    `json:"page"`
	SortBy   string `json:"sort_by,omitempty"`
	GenreIDs []int  `json:"genre_ids,omitempty"`
}

func ParseSource(s string) (Source, error) {
	switch src := Source(strings.ToLower(strings.TrimSpace(s))); src {
	case SourcePopular, SourceDiscover, SourceSearch, SourceSimilar:
		return src, nil
	case "":
		return SourcePopular, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSource, s)
	}
}

// Normalize fills defaults and checks the fields each source requires.
func (c Criteria) Normalize() (Criteria, error) {
	if c.Source == "" {
		c.Source = SourcePopular
	}
	if c.Page < 1 {
		c.Page = 1
	}
	c.Query = strings.TrimSpace(c.Query)

	switch c.Source {
	case SourcePopular:
	case SourceDiscover:
		if c.SortBy == "" {
			c.SortBy = DefaultSortBy
		}
	case SourceSearch:
		if c.Query == "" {
			return c, domain.ErrEmptyQuery
		}
	case SourceSimilar:
		if c.MovieID <= 0 {
			return c, domain.ErrMissingMovieID
		}
	default:
		return c, fmt.Errorf("%w: %q", domain.ErrUnknownSource, c.Source)
	}
	return c, nil
}

// Key identifies the criteria for caching.
func (c Criteria) Key() string {
	var b strings.Builder
	b.WriteString(string(c.Source))
	b.WriteString(":p")
	b.WriteString(strconv.Itoa(c.Page))
	switch c.Source {
	case SourceSearch:
		b.WriteString(":q=")
		b.WriteString(strings.ToLower(c.Query))
	case SourceSimilar:
		b.WriteString(":id=")
		b.WriteString(strconv.FormatInt(c.MovieID, 10))
	case SourceDiscover:
		b.WriteString(":sort=")
		b.WriteString(c.SortBy)
		if len(c.GenreIDs) > 0 {
			b.WriteString(":g=")
			b.WriteString(joinInts(c.GenreIDs, ","))
		}
	}
	return b.String()
}

func joinInts(vals []int, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
