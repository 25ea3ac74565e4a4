package ranking

import (
	"sort"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

const DefaultFavoriteGenres = 3

// TopGenres returns up to k genre ids ordered by descending frequency across
// movies. Equal counts keep the order in which the genres were first seen.
func TopGenres(movies []domain.Movie, k int) []int {
	if k <= 0 {
		return []int{}
	}

	type genreCount struct {
		id    int
		count int
	}
	var counts []genreCount
	index := make(map[int]int)
	for _, m := range movies {
		for _, g := range m.GenreIDs {
			if i, ok := index[g]; ok {
				counts[i].count++
				continue
			}
			index[g] = len(counts)
			counts = append(counts, genreCount{id: g, count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	if len(counts) > k {
		counts = counts[:k]
	}
	top := make([]int, len(counts))
	for i, c := range counts {
		top[i] = c.id
	}
	return top
}
