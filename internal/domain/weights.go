package domain

import "fmt"

const (
	MinDial = 0
	MaxDial = 10
)

// Filters holds the optional hard thresholds applied before scoring.
// A nil field disables that predicate.
type Filters struct {
	MinRating       *float64 `json:"min_rating,omitempty"`
	MinYear         *int     `json:"min_year,omitempty"`
	PopularityFloor *int     `json:"popularity_floor,omitempty"`
}

// WeightConfig is the set of user dials for one ranking request.
type WeightConfig struct {
	PopularityWeight int     `json:"popularity_weight"`
	RatingWeight     int     `json:"rating_weight"`
	RecencyYear      int     `json:"recency_year"`
	Filters          Filters `json:"filters"`
}

// Validate checks the dials against their documented domains. minYear and
// currentYear bound RecencyYear.
func (w WeightConfig) Validate(minYear, currentYear int) error {
	if w.PopularityWeight < MinDial || w.PopularityWeight > MaxDial {
		return fmt.Errorf("%w: popularity weight %d outside [%d,%d]", ErrInvalidWeights, w.PopularityWeight, MinDial, MaxDial)
	}
	if w.RatingWeight < MinDial || w.RatingWeight > MaxDial {
		return fmt.Errorf("%w: rating weight %d outside [%d,%d]", ErrInvalidWeights, w.RatingWeight, MinDial, MaxDial)
	}
	if w.RecencyYear < minYear || w.RecencyYear > currentYear {
		return fmt.Errorf("%w: recency year %d outside [%d,%d]", ErrInvalidWeights, w.RecencyYear, minYear, currentYear)
	}
	if r := w.Filters.MinRating; r != nil && (*r < 0 || *r > 10) {
		return fmt.Errorf("%w: min rating %.1f outside [0,10]", ErrInvalidWeights, *r)
	}
	if p := w.Filters.PopularityFloor; p != nil && (*p < MinDial || *p > MaxDial) {
		return fmt.Errorf("%w: popularity floor %d outside [%d,%d]", ErrInvalidWeights, *p, MinDial, MaxDial)
	}
	return nil
}
