package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

const pageSize = 20

// Repository is the Postgres-backed local catalog. It satisfies
// catalog.Catalog so it can stand in for the remote API.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}
