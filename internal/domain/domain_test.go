package domain

import (
	"errors"
	"testing"
)

func TestReleaseYear(t *testing.T) {
	cases := []struct {
		date string
		year int
		ok   bool
	}{
		{"2023-01-01", 2023, true},
		{"1999-03", 1999, true},
		{"1987", 1987, true},
		{"", 0, false},
		{"soon", 0, false},
	}
	for _, c := range cases {
		year, ok := Movie{ReleaseDate: c.date}.ReleaseYear()
		if year != c.year || ok != c.ok {
			t.Errorf("ReleaseYear(%q) = %d %v, expected %d %v", c.date, year, ok, c.year, c.ok)
		}
	}
}

func TestWeightConfigValidate(t *testing.T) {
	valid := WeightConfig{PopularityWeight: 10, RatingWeight: 0, RecencyYear: 1990}
	if err := valid.Validate(1900, 2026); err != nil {
		t.Errorf("expected valid, got %v", err)
	}

	bad := []WeightConfig{
		{PopularityWeight: 11, RecencyYear: 1990},
		{RatingWeight: -1, RecencyYear: 1990},
		{RecencyYear: 1899},
		{RecencyYear: 2027},
		{RecencyYear: 1990, Filters: Filters{MinRating: ptr(10.5)}},
		{RecencyYear: 1990, Filters: Filters{PopularityFloor: ptr(12)}},
	}
	for _, w := range bad {
		if err := w.Validate(1900, 2026); !errors.Is(err, ErrInvalidWeights) {
			t.Errorf("%+v: expected ErrInvalidWeights, got %v", w, err)
		}
	}
}

func ptr[T any](v T) *T { return &v }
