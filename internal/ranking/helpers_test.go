package ranking

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

const testYear = 2026

func fixedClock() time.Time {
	return time.Date(testYear, time.March, 14, 12, 0, 0, 0, time.UTC)
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), WithClock(fixedClock))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func approxEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// randomMovies builds a reproducible candidate set with a mix of missing fields.
func randomMovies(rng *rand.Rand, n int) []domain.Movie {
	movies := make([]domain.Movie, n)
	for i := range movies {
		m := domain.Movie{
			ID:          int64(i + 1),
			Title:       "Movie",
			Popularity:  rng.Float64() * 500,
			VoteAverage: float64(rng.Intn(101)) / 10,
			VoteCount:   rng.Intn(20000),
		}
		if rng.Intn(5) != 0 {
			m.ReleaseDate = time.Date(1920+rng.Intn(107), time.Month(1+rng.Intn(12)), 1, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
		}
		for g := 0; g < rng.Intn(4); g++ {
			m.GenreIDs = append(m.GenreIDs, 1+rng.Intn(8))
		}
		movies[i] = m
	}
	return movies
}
