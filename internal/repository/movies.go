package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/actuallystonmai/movie-recommender/internal/catalog"
	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

const movieColumns = `m.id, m.title, m.overview, m.poster_path, m.popularity, m.vote_average, m.vote_count,
	COALESCE(to_char(m.release_date, 'YYYY-MM-DD'), ''),
	COALESCE(array_agg(mg.genre_id ORDER BY mg.genre_id) FILTER (WHERE mg.genre_id IS NOT NULL), '{}')`

// whitelisted ORDER BY clauses for discover sort keys
var sortColumns = map[string]string{
	"popularity.desc":   "m.popularity DESC",
	"popularity.asc":    "m.popularity ASC",
	"vote_average.desc": "m.vote_average DESC",
	"vote_count.desc":   "m.vote_count DESC",
	"release_date.desc": "m.release_date DESC NULLS LAST",
	"release_date.asc":  "m.release_date ASC NULLS LAST",
}

func (r *Repository) FetchCandidates(ctx context.Context, c catalog.Criteria) ([]domain.Movie, error) {
	c, err := c.Normalize()
	if err != nil {
		return nil, err
	}
	offset := (c.Page - 1) * pageSize

	var rows pgx.Rows
	switch c.Source {
	case catalog.SourcePopular:
		rows, err = r.pool.Query(ctx,
			`SELECT `+movieColumns+`
			FROM movies m
			LEFT JOIN movie_genres mg ON mg.movie_id = m.id
			GROUP BY m.id
			ORDER BY m.popularity DESC, m.id
			LIMIT $1 OFFSET $2`, pageSize, offset)

	case catalog.SourceDiscover:
		order, ok := sortColumns[c.SortBy]
		if !ok {
			order = sortColumns[catalog.DefaultSortBy]
		}
		rows, err = r.pool.Query(ctx,
			`SELECT `+movieColumns+`
			FROM movies m
			LEFT JOIN movie_genres mg ON mg.movie_id = m.id
			WHERE cardinality($1::int[]) = 0
				OR m.id IN (SELECT movie_id FROM movie_genres WHERE genre_id = ANY($1::int[]))
			GROUP BY m.id
			ORDER BY `+order+`, m.id
			LIMIT $2 OFFSET $3`, toInt32s(c.GenreIDs), pageSize, offset)

	case catalog.SourceSearch:
		rows, err = r.pool.Query(ctx,
			`SELECT `+movieColumns+`
			FROM movies m
			LEFT JOIN movie_genres mg ON mg.movie_id = m.id
			WHERE m.title ILIKE '%' || $1::text || '%'
			GROUP BY m.id
			ORDER BY m.popularity DESC, m.id
			LIMIT $2 OFFSET $3`, c.Query, pageSize, offset)

	case catalog.SourceSimilar:
		rows, err = r.pool.Query(ctx,
			`SELECT `+movieColumns+`
			FROM movies m
			LEFT JOIN movie_genres mg ON mg.movie_id = m.id
			WHERE m.id <> $1
				AND m.id IN (
					SELECT movie_id FROM movie_genres
					WHERE genre_id IN (SELECT genre_id FROM movie_genres WHERE movie_id = $1))
			GROUP BY m.id
			ORDER BY m.popularity DESC, m.id
			LIMIT $2 OFFSET $3`, c.MovieID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("query %s candidates: %w", c.Source, err)
	}
	defer rows.Close()

	movies := []domain.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over movies: %w", err)
	}
	return movies, nil
}

func (r *Repository) MovieDetails(ctx context.Context, id int64) (*domain.Movie, error) {
	if id <= 0 {
		return nil, domain.ErrMissingMovieID
	}
	row := r.pool.QueryRow(ctx,
		`SELECT `+movieColumns+`
		FROM movies m
		LEFT JOIN movie_genres mg ON mg.movie_id = m.id
		WHERE m.id = $1
		GROUP BY m.id`, id)

	m, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("query movie id=%d: %w", id, err)
	}
	return &m, nil
}

// Count total movies
func (r *Repository) CountMovies(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return total, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var (
		m      domain.Movie
		genres []int32
	)
	err := row.Scan(&m.ID, &m.Title, &m.Overview, &m.PosterPath, &m.Popularity,
		&m.VoteAverage, &m.VoteCount, &m.ReleaseDate, &genres)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return m, err
		}
		return m, fmt.Errorf("scan movie: %w", err)
	}
	m.GenreIDs = make([]int, len(genres))
	for i, g := range genres {
		m.GenreIDs[i] = int(g)
	}
	return m, nil
}

func toInt32s(vals []int) []int32 {
	out := make([]int32, len(vals))
	for i, v := range vals {
		out[i] = int32(v)
	}
	return out
}
