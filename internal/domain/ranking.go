package domain

type RankingStatus string

const (
	StatusRanked    RankingStatus = "ok"
	StatusNoResults RankingStatus = "no_results"
)

type Explanation struct {
	HighRating            bool `json:"high_rating"`
	Recent                bool `json:"recent"`
	MatchesFavoriteGenres bool `json:"matches_favorite_genres"`
}

type ScoredMovie struct {
	Movie
	Score       float64     `json:"score"`
	Explanation Explanation `json:"explanation"`
}

// Ranking is the engine output. An empty ranking always carries
// StatusNoResults; it is never reported as an error.
type Ranking struct {
	Status         RankingStatus `json:"status"`
	FavoriteGenres []int         `json:"favorite_genres"`
	Movies         []ScoredMovie `json:"results"`
	CandidateCount int           `json:"candidate_count"`
	CurrentYear    int           `json:"current_year"`
}

func (r *Ranking) NoResults() bool {
	return r.Status == StatusNoResults
}

type RankingMeta struct {
	GeneratedAt string `json:"generated_at"`
	Source      string `json:"source"`
	TotalCount  int    `json:"total_count"`
}
