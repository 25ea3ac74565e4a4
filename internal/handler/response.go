package handler

import "github.com/actuallystonmai/movie-recommender/internal/domain"

type RankingResponse struct {
	Status         domain.RankingStatus `json:"status"`
	FavoriteGenres []int                `json:"favorite_genres"`
	Results        []domain.ScoredMovie `json:"results"`
	Weights        domain.WeightConfig  `json:"weights"`
	Metadata       domain.RankingMeta   `json:"metadata"`
}

type MovieListResponse struct {
	Page     int                  `json:"page"`
	Results  []domain.ScoredMovie `json:"results"`
	SortedBy string               `json:"sorted_by"`
}

type GenresResponse struct {
	Genres []domain.Genre `json:"genres"`
}

type APIKeyRequest struct {
	APIKey string `json:"api_key"`
}

type APIKeyStatusResponse struct {
	Configured bool `json:"configured"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
