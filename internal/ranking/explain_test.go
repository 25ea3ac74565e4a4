package ranking

import (
	"math/rand"
	"testing"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

func TestExplainReasons(t *testing.T) {
	e := NewExplainer([]int{28}, DefaultYearBase, testYear)

	ex := e.Explain(domain.Movie{VoteAverage: 7.5, ReleaseDate: "2021-01-01", GenreIDs: []int{12, 28}})
	if !ex.HighRating || !ex.Recent || !ex.MatchesFavoriteGenres {
		t.Errorf("expected all reasons, got %+v", ex)
	}

	ex = e.Explain(domain.Movie{VoteAverage: 7.4, ReleaseDate: "2020-12-31", GenreIDs: []int{28}})
	if ex.HighRating || ex.Recent || !ex.MatchesFavoriteGenres {
		t.Errorf("expected only genre match, got %+v", ex)
	}
}

func TestExplainFallbackPrefersRating(t *testing.T) {
	e := NewExplainer(nil, DefaultYearBase, testYear)

	// rating 0.6 vs recency (1950-1900)/126
	ex := e.Explain(domain.Movie{VoteAverage: 6, ReleaseDate: "1950-01-01"})
	if !ex.HighRating || ex.Recent {
		t.Errorf("expected rating fallback, got %+v", ex)
	}

	// rating 0.1 vs recency (2015-1900)/126
	ex = e.Explain(domain.Movie{VoteAverage: 1, ReleaseDate: "2015-01-01"})
	if ex.HighRating || !ex.Recent {
		t.Errorf("expected recency fallback, got %+v", ex)
	}

	// nothing known: 0 >= 0 picks rating
	ex = e.Explain(domain.Movie{})
	if !ex.HighRating || ex.Recent {
		t.Errorf("expected rating fallback on tie, got %+v", ex)
	}
}

func TestExplainAlwaysHasReason(t *testing.T) {
	movies := randomMovies(rand.New(rand.NewSource(3)), 200)
	for _, favorites := range [][]int{nil, {1}, {2, 3, 4}} {
		e := NewExplainer(favorites, DefaultYearBase, testYear)
		for _, m := range movies {
			ex := e.Explain(m)
			if !ex.HighRating && !ex.Recent && !ex.MatchesFavoriteGenres {
				t.Fatalf("movie %d has no reason (favorites %v)", m.ID, favorites)
			}
		}
	}
}
