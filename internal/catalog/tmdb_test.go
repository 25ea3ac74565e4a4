package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

func newTestTMDB(t *testing.T, key string, h http.HandlerFunc) *TMDB {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewTMDB(TMDBConfig{BaseURL: srv.URL}, StaticKey(key))
}

func TestTMDBPopular(t *testing.T) {
	client := newTestTMDB(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/popular" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_key") != "secret" || q.Get("language") != DefaultLanguage || q.Get("page") != "2" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"page":2,"results":[
			{"id":1,"title":"Dune","popularity":120.5,"vote_average":8.1,"vote_count":5000,"release_date":"2021-09-15","genre_ids":[878,12]},
			{"id":2,"title":"Unknown","popularity":1.2,"vote_average":null,"vote_count":0,"release_date":""}
		]}`)
	})

	movies, err := client.FetchCandidates(context.Background(), Criteria{Source: SourcePopular, Page: 2})
	if err != nil {
		t.Fatalf("FetchCandidates: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
	if movies[0].Title != "Dune" || len(movies[0].GenreIDs) != 2 {
		t.Errorf("unexpected first movie %+v", movies[0])
	}
	if _, ok := movies[1].ReleaseYear(); ok || movies[1].VoteAverage != 0 || movies[1].GenreIDs != nil {
		t.Errorf("missing fields should decode to zero values, got %+v", movies[1])
	}
}

func TestTMDBSearchAndDiscoverParams(t *testing.T) {
	var paths []string
	client := newTestTMDB(t, "k", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path+"?"+r.URL.Query().Get("query")+r.URL.Query().Get("with_genres")+r.URL.Query().Get("sort_by"))
		fmt.Fprint(w, `{"results":[]}`)
	})
	ctx := context.Background()

	if _, err := client.FetchCandidates(ctx, Criteria{Source: SourceSearch, Query: "alien"}); err != nil {
		t.Fatalf("search: %v", err)
	}
	if _, err := client.FetchCandidates(ctx, Criteria{Source: SourceDiscover, GenreIDs: []int{27, 53}}); err != nil {
		t.Fatalf("discover: %v", err)
	}
	if _, err := client.FetchCandidates(ctx, Criteria{Source: SourceSimilar, MovieID: 603}); err != nil {
		t.Fatalf("similar: %v", err)
	}

	want := []string{"/search/movie?alien", "/discover/movie?27,53popularity.desc", "/movie/603/similar?"}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("request %d: expected %q, got %q", i, p, paths[i])
		}
	}
}

func TestTMDBRejectsBeforeCalling(t *testing.T) {
	client := newTestTMDB(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s", r.URL.Path)
	})
	ctx := context.Background()

	if _, err := client.FetchCandidates(ctx, Criteria{Source: SourcePopular}); !errors.Is(err, domain.ErrAPIKeyMissing) {
		t.Errorf("expected ErrAPIKeyMissing, got %v", err)
	}
	if _, err := client.FetchCandidates(ctx, Criteria{Source: SourceSearch, Query: " "}); !errors.Is(err, domain.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
	if _, err := client.MovieDetails(ctx, 0); !errors.Is(err, domain.ErrMissingMovieID) {
		t.Errorf("expected ErrMissingMovieID, got %v", err)
	}
}

func TestTMDBNonSuccessStatus(t *testing.T) {
	client := newTestTMDB(t, "k", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"Invalid API key"}`, http.StatusUnauthorized)
	})

	_, err := client.Genres(context.Background())
	if !IsAPIError(err) {
		t.Fatalf("expected APIError, got %v", err)
	}
	var apiErr *APIError
	errors.As(err, &apiErr)
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Endpoint != "/genre/movie/list" {
		t.Errorf("unexpected api error %+v", apiErr)
	}
}

func TestTMDBMovieDetails(t *testing.T) {
	client := newTestTMDB(t, "k", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/movie/404" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"id":603,"title":"The Matrix","vote_average":8.2,"release_date":"1999-03-30","genres":[{"id":28,"name":"Action"},{"id":878,"name":"Science-Fiction"}]}`)
	})
	ctx := context.Background()

	m, err := client.MovieDetails(ctx, 603)
	if err != nil {
		t.Fatalf("MovieDetails: %v", err)
	}
	if m.Title != "The Matrix" || len(m.GenreIDs) != 2 || m.GenreIDs[1] != 878 {
		t.Errorf("unexpected movie %+v", m)
	}

	if _, err := client.MovieDetails(ctx, 404); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}
