package ranking

import (
	"math"
	"testing"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

func TestQualityScores(t *testing.T) {
	engine := newTestEngine(t)
	movies := []domain.Movie{
		{ID: 1, Popularity: 100, VoteAverage: 8, VoteCount: 9999, ReleaseDate: "2026-02-01"},
		{ID: 2, Popularity: 0, VoteAverage: 5, VoteCount: 0, ReleaseDate: "2016-02-01"},
		{ID: 3, Popularity: 50, VoteAverage: 6, VoteCount: 99},
	}
	got := engine.QualityScores(movies)
	if len(got) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(got))
	}

	// 0.8*0.4 + 1*0.25 + 1*0.2 + 1*0.15
	if math.Abs(got[0].Score-9.2) > 1e-9 {
		t.Errorf("expected 9.2, got %f", got[0].Score)
	}
	// 0.5*0.4 + 0 + 0 + 0.5*0.15
	if math.Abs(got[1].Score-2.75) > 1e-9 {
		t.Errorf("expected 2.75, got %f", got[1].Score)
	}
	// 0.6*0.4 + 0.5*0.25 + 0.5*0.2 + 0
	if math.Abs(got[2].Score-4.65) > 1e-9 {
		t.Errorf("expected 4.65, got %f", got[2].Score)
	}

	for i, m := range got {
		if m.ID != movies[i].ID {
			t.Errorf("quality scores must keep input order")
		}
	}
}

func TestQualityScoresEmpty(t *testing.T) {
	engine := newTestEngine(t)
	if got := engine.QualityScores(nil); len(got) != 0 {
		t.Errorf("expected no scores, got %d", len(got))
	}
}

func TestQualityScoresKeepPrecision(t *testing.T) {
	engine := newTestEngine(t)
	got := engine.QualityScores([]domain.Movie{
		{ID: 1, VoteAverage: 7.0001},
		{ID: 2, VoteAverage: 7.0004},
	})
	if got[1].Score <= got[0].Score {
		t.Errorf("expected %f > %f", got[1].Score, got[0].Score)
	}
}
