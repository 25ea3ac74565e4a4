package ranking

import (
	"math"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

// Scorer computes the weighted-average composite score on a [0,10] scale.
// It is built once per ranking from the filtered candidate set.
type Scorer struct {
	popularity       bounds
	popularityWeight float64
	ratingWeight     float64
	recencyWeight    float64
	yearBase         int
	currentYear      int
}

func NewScorer(filtered []domain.Movie, w domain.WeightConfig, cfg Config, currentYear int) *Scorer {
	pops := make([]float64, len(filtered))
	for i, m := range filtered {
		pops[i] = m.Popularity
	}
	return &Scorer{
		popularity:       boundsOf(pops),
		popularityWeight: float64(w.PopularityWeight),
		ratingWeight:     float64(w.RatingWeight),
		recencyWeight:    float64(RecencyWeight(w.RecencyYear, cfg.MinYear, currentYear)),
		yearBase:         cfg.YearBase,
		currentYear:      currentYear,
	}
}

// RecencyWeight projects the minimum-year dial onto the 0-10 weight scale.
func RecencyWeight(recencyYear, minYear, currentYear int) int {
	if currentYear <= minYear {
		return 0
	}
	w := math.Round(float64(recencyYear-minYear) / float64(currentYear-minYear) * domain.MaxDial)
	return int(math.Max(domain.MinDial, math.Min(domain.MaxDial, w)))
}

func (s *Scorer) TotalWeight() float64 {
	return s.popularityWeight + s.ratingWeight + s.recencyWeight
}

func (s *Scorer) Score(m domain.Movie) float64 {
	total := s.TotalWeight()
	if total <= 0 {
		return 0
	}
	popNorm := clamp01(Normalize(m.Popularity, s.popularity.min, s.popularity.max))
	sum := s.popularityWeight*popNorm +
		s.ratingWeight*ratingNorm(m) +
		s.recencyWeight*recencyNorm(m, s.yearBase, s.currentYear)
	return sum / total * 10
}

func ratingNorm(m domain.Movie) float64 {
	return clamp01(m.VoteAverage / 10)
}

// recencyNorm places unknown release dates at yearBase, the bottom of the scale.
func recencyNorm(m domain.Movie, yearBase, currentYear int) float64 {
	year, ok := m.ReleaseYear()
	if !ok {
		year = yearBase
	}
	return clamp01(Normalize(float64(year), float64(yearBase), float64(currentYear)))
}
