package ranking

import (
	"math"
	"slices"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

// Fixed weights of the catalog quality score.
const (
	qualityRatingWeight     = 0.4
	qualityPopularityWeight = 0.25
	qualityVotesWeight      = 0.2
	qualityRecencyWeight    = 0.15

	// recency decays linearly to zero over this many years
	qualityRecencyHorizon = 20
)

// QualityScores rates every movie with the fixed-weight catalog score on a
// [0,10] scale. Results keep the input order; use SortByScore to rank them.
func (e *Engine) QualityScores(movies []domain.Movie) []domain.ScoredMovie {
	if len(movies) == 0 {
		return []domain.ScoredMovie{}
	}
	currentYear := e.CurrentYear()

	pops := make([]float64, len(movies))
	votes := make([]float64, len(movies))
	for i, m := range movies {
		pops[i] = m.Popularity
		votes[i] = float64(m.VoteCount)
	}
	popBounds := boundsOf(pops)
	voteBounds := boundsOf(votes)

	explainer := NewExplainer(TopGenres(movies, e.cfg.FavoriteGenres), e.cfg.YearBase, currentYear)

	scored := make([]domain.ScoredMovie, len(movies))
	for i, m := range movies {
		score := ratingNorm(m)*qualityRatingWeight +
			clamp01(Normalize(m.Popularity, popBounds.min, popBounds.max))*qualityPopularityWeight +
			clamp01(LogNormalize(float64(m.VoteCount), voteBounds.min, voteBounds.max))*qualityVotesWeight +
			qualityRecency(m, currentYear)*qualityRecencyWeight

		m.GenreIDs = slices.Clone(m.GenreIDs)
		scored[i] = domain.ScoredMovie{
			Movie:       m,
			Score:       score * 10,
			Explanation: explainer.Explain(m),
		}
	}
	return scored
}

func qualityRecency(m domain.Movie, currentYear int) float64 {
	year, ok := m.ReleaseYear()
	if !ok {
		return 0
	}
	age := float64(currentYear - year)
	return clamp01(math.Max(0, 1-age/qualityRecencyHorizon))
}
