package ranking

import (
	"errors"
	"slices"
	"sort"
	"time"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

const (
	DefaultYearBase = 1900
	DefaultMinYear  = 1900
)

type Config struct {
	// YearBase anchors recency normalization; unknown release dates sit here.
	YearBase int
	// MinYear is the floor of the recency dial.
	MinYear        int
	FavoriteGenres int
}

func DefaultConfig() Config {
	return Config{
		YearBase:       DefaultYearBase,
		MinYear:        DefaultMinYear,
		FavoriteGenres: DefaultFavoriteGenres,
	}
}

type Engine struct {
	cfg Config
	now func() time.Time
}

type Option func(*Engine)

// WithClock overrides the source of the current year.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.YearBase <= 0 || cfg.MinYear <= 0 {
		return nil, errors.New("ranking: year base and min year must be positive")
	}
	if cfg.FavoriteGenres <= 0 {
		cfg.FavoriteGenres = DefaultFavoriteGenres
	}
	e := &Engine{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) CurrentYear() int {
	return e.now().Year()
}

// Rank filters, scores, explains and orders candidates. Candidates are
// read-only. An empty input or an empty filtered set yields a ranking with
// StatusNoResults.
func (e *Engine) Rank(candidates []domain.Movie, w domain.WeightConfig) *domain.Ranking {
	currentYear := e.CurrentYear()
	result := &domain.Ranking{
		Status:         domain.StatusNoResults,
		FavoriteGenres: []int{},
		Movies:         []domain.ScoredMovie{},
		CandidateCount: len(candidates),
		CurrentYear:    currentYear,
	}

	filtered := Filter(candidates, w.Filters)
	if len(filtered) == 0 {
		return result
	}

	favorites := TopGenres(filtered, e.cfg.FavoriteGenres)
	scorer := NewScorer(filtered, w, e.cfg, currentYear)
	explainer := NewExplainer(favorites, e.cfg.YearBase, currentYear)

	scored := make([]domain.ScoredMovie, len(filtered))
	for i, m := range filtered {
		m.GenreIDs = slices.Clone(m.GenreIDs)
		scored[i] = domain.ScoredMovie{
			Movie:       m,
			Score:       scorer.Score(m),
			Explanation: explainer.Explain(m),
		}
	}
	SortByScore(scored)

	result.Status = domain.StatusRanked
	result.FavoriteGenres = favorites
	result.Movies = scored
	return result
}

// SortByScore orders by descending score; ties keep their input order.
func SortByScore(scored []domain.ScoredMovie) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}
