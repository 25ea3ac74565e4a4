package ranking

import (
	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

const (
	HighRatingThreshold = 7.5
	RecentYears         = 5
)

type Explainer struct {
	favorites   []int
	yearBase    int
	currentYear int
}

func NewExplainer(favorites []int, yearBase, currentYear int) *Explainer {
	return &Explainer{favorites: favorites, yearBase: yearBase, currentYear: currentYear}
}

// Explain reports why a movie ranks where it does. At least one reason is
// always set: when nothing qualifies, the stronger of the normalized rating
// and recency signals is reported, with rating winning ties.
func (e *Explainer) Explain(m domain.Movie) domain.Explanation {
	var ex domain.Explanation
	ex.HighRating = m.VoteAverage >= HighRatingThreshold
	if year, ok := m.ReleaseYear(); ok {
		ex.Recent = year >= e.currentYear-RecentYears
	}
	for _, g := range e.favorites {
		if m.HasGenre(g) {
			ex.MatchesFavoriteGenres = true
			break
		}
	}

	if !ex.HighRating && !ex.Recent && !ex.MatchesFavoriteGenres {
		if ratingNorm(m) >= recencyNorm(m, e.yearBase, e.currentYear) {
			ex.HighRating = true
		} else {
			ex.Recent = true
		}
	}
	return ex
}
