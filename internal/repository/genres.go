package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

func (r *Repository) Genres(ctx context.Context) ([]domain.Genre, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query genres: %w", err)
	}
	defer rows.Close()

	genres := []domain.Genre{}
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over genres: %w", err)
	}
	return genres, nil
}
