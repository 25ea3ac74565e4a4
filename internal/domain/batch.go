package domain

type BatchStatus string

const (
	BatchSuccess BatchStatus = "success"
	BatchFailed  BatchStatus = "failed"
)

// BatchRankResult is one weight configuration's outcome in a batch request.
type BatchRankResult struct {
	Index   int          `json:"index"`
	Weights WeightConfig `json:"weights"`
	Ranking *Ranking     `json:"ranking,omitempty"`
	Status  BatchStatus  `json:"status"`
	Error   string       `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchRankResponse struct {
	CandidateCount int               `json:"candidate_count"`
	Results        []BatchRankResult `json:"results"`
	Summary        BatchSummary      `json:"summary"`
	Metadata       RankingMeta       `json:"metadata"`
}
