package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

type memoryStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	failGet bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return false, errors.New("store down")
	}
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (s *memoryStore) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return nil
}

type countingCatalog struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (c *countingCatalog) FetchCandidates(ctx context.Context, crit Criteria) ([]domain.Movie, error) {
	c.calls.Add(1)
	if c.release != nil {
		<-c.release
	}
	if c.err != nil {
		return nil, c.err
	}
	return []domain.Movie{{ID: int64(crit.Page), Title: "Movie"}}, nil
}

func (c *countingCatalog) MovieDetails(ctx context.Context, id int64) (*domain.Movie, error) {
	c.calls.Add(1)
	return &domain.Movie{ID: id, Title: "Details"}, nil
}

func (c *countingCatalog) Genres(ctx context.Context) ([]domain.Genre, error) {
	c.calls.Add(1)
	return []domain.Genre{{ID: 28, Name: "Action"}}, nil
}

func TestCachedServesRepeatFromStore(t *testing.T) {
	upstream := &countingCatalog{}
	cached := NewCached(upstream, newMemoryStore(), time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		movies, err := cached.FetchCandidates(ctx, Criteria{Source: SourcePopular, Page: 4})
		if err != nil {
			t.Fatalf("FetchCandidates: %v", err)
		}
		if len(movies) != 1 || movies[0].ID != 4 {
			t.Fatalf("unexpected movies %+v", movies)
		}
	}
	if _, err := cached.Genres(ctx); err != nil {
		t.Fatalf("Genres: %v", err)
	}
	if _, err := cached.Genres(ctx); err != nil {
		t.Fatalf("Genres: %v", err)
	}
	if got := upstream.calls.Load(); got != 2 {
		t.Errorf("expected 2 upstream calls, got %d", got)
	}
}

func TestCachedCollapsesConcurrentMisses(t *testing.T) {
	upstream := &countingCatalog{release: make(chan struct{})}
	cached := NewCached(upstream, newMemoryStore(), time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cached.FetchCandidates(context.Background(), Criteria{Source: SourcePopular}); err != nil {
				t.Errorf("FetchCandidates: %v", err)
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(upstream.release)
	wg.Wait()

	if got := upstream.calls.Load(); got != 1 {
		t.Errorf("expected a single upstream call, got %d", got)
	}
}

func TestCachedStoreFailureFallsThrough(t *testing.T) {
	upstream := &countingCatalog{}
	store := newMemoryStore()
	store.failGet = true
	cached := NewCached(upstream, store, time.Minute)

	m, err := cached.MovieDetails(context.Background(), 7)
	if err != nil {
		t.Fatalf("MovieDetails: %v", err)
	}
	if m.ID != 7 {
		t.Errorf("expected movie 7, got %d", m.ID)
	}
}

func TestCachedDoesNotStoreErrors(t *testing.T) {
	upstream := &countingCatalog{err: &APIError{StatusCode: 503, Status: "503 Service Unavailable", Endpoint: "/movie/popular"}}
	store := newMemoryStore()
	cached := NewCached(upstream, store, time.Minute)

	if _, err := cached.FetchCandidates(context.Background(), Criteria{}); !IsAPIError(err) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if len(store.data) != 0 {
		t.Errorf("errors must not be cached, store has %d entries", len(store.data))
	}
}
