package ranking

import (
	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

// LinkedWeights builds a WeightConfig where the dials double as filters, the
// way the slider panel behaves: a rating dial above zero is also the minimum
// rating, a year above minYear is also the minimum release year, and a
// popularity dial above zero is also the popularity floor.
func LinkedWeights(popularity, rating, recencyYear, minYear int) domain.WeightConfig {
	w := domain.WeightConfig{
		PopularityWeight: popularity,
		RatingWeight:     rating,
		RecencyYear:      recencyYear,
	}
	if rating > domain.MinDial {
		r := float64(rating)
		w.Filters.MinRating = &r
	}
	if recencyYear > minYear {
		y := recencyYear
		w.Filters.MinYear = &y
	}
	if popularity > domain.MinDial {
		p := popularity
		w.Filters.PopularityFloor = &p
	}
	return w
}
