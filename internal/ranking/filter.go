package ranking

import (
	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

// Filter keeps the candidates that pass every enabled threshold, preserving
// their relative order. The popularity floor is derived from the range of the
// full input set so its meaning does not depend on the other predicates.
func Filter(candidates []domain.Movie, f domain.Filters) []domain.Movie {
	popThreshold, popEnabled := popularityThreshold(candidates, f.PopularityFloor)

	kept := make([]domain.Movie, 0, len(candidates))
	for _, m := range candidates {
		if f.MinRating != nil && m.VoteAverage < *f.MinRating {
			continue
		}
		if f.MinYear != nil {
			// unknown release dates count as year 0
			year, _ := m.ReleaseYear()
			if year < *f.MinYear {
				continue
			}
		}
		if popEnabled && m.Popularity < popThreshold {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func popularityThreshold(candidates []domain.Movie, floor *int) (float64, bool) {
	if floor == nil || len(candidates) == 0 {
		return 0, false
	}
	pops := make([]float64, len(candidates))
	for i, m := range candidates {
		pops[i] = m.Popularity
	}
	b := boundsOf(pops)
	return b.min + float64(*floor)/domain.MaxDial*(b.max-b.min), true
}
