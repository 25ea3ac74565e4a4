package domain

import (
	"strconv"
	"time"
)

type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	ReleaseDate string  `json:"release_date,omitempty"`
	GenreIDs    []int   `json:"genre_ids"`
}

// ReleaseYear parses the year out of ReleaseDate. Dates that are not full ISO
// dates still yield a year when they start with four digits ("2019", "2019-05").
func (m Movie) ReleaseYear() (int, bool) {
	if m.ReleaseDate == "" {
		return 0, false
	}
	if t, err := time.Parse(time.DateOnly, m.ReleaseDate); err == nil {
		return t.Year(), true
	}
	if len(m.ReleaseDate) >= 4 {
		if y, err := strconv.Atoi(m.ReleaseDate[:4]); err == nil {
			return y, true
		}
	}
	return 0, false
}

func (m Movie) HasGenre(id int) bool {
	for _, g := range m.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}
