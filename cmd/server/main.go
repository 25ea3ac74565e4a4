package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/actuallystonmai/movie-recommender/internal/cache"
	"github.com/actuallystonmai/movie-recommender/internal/catalog"
	"github.com/actuallystonmai/movie-recommender/internal/config"
	"github.com/actuallystonmai/movie-recommender/internal/handler"
	"github.com/actuallystonmai/movie-recommender/internal/logging"
	"github.com/actuallystonmai/movie-recommender/internal/ranking"
	"github.com/actuallystonmai/movie-recommender/internal/repository"
	"github.com/actuallystonmai/movie-recommender/internal/router"
	"github.com/actuallystonmai/movie-recommender/internal/service"
	"github.com/actuallystonmai/movie-recommender/seeds"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.Debug().
		Str("catalog_source", cfg.CatalogSource).
		Int("port", cfg.Port).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to parse redis url")
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	responseCache := cache.NewCache(redisClient)
	if err := responseCache.Ping(ctx); err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to redis")
	}
	logging.Info().Msg("connected to Redis")
	keyStore := cache.NewKeyStore(redisClient, cfg.TMDBAPIKey)

	// ------------ Catalog source ---------------
	var source catalog.Catalog
	switch cfg.CatalogSource {
	case config.SourcePostgres:
		pool, err := connectPostgres(ctx, cfg)
		if err != nil {
			logging.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()

		// for migrate-down using CLI command
		if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
			if err := runMigration(ctx, pool, "migrations/create_tables.down.sql"); err != nil {
				logging.Fatal().Err(err).Msg("failed to migrate down")
			}
			logging.Info().Msg("migrations dropped")
			return
		}
		if err := runMigration(ctx, pool, "migrations/create_tables.up.sql"); err != nil {
			logging.Fatal().Err(err).Msg("failed to migrate up")
		}

		repo := repository.NewRepository(pool)
		force := len(os.Args) > 1 && os.Args[1] == "seed"
		if err := checkSeed(ctx, pool, repo, force); err != nil {
			logging.Fatal().Err(err).Msg("failed to check seed")
		}
		source = repo
	default:
		source = catalog.NewTMDB(catalog.TMDBConfig{
			BaseURL:   cfg.TMDBBaseURL,
			Language:  cfg.TMDBLanguage,
			Region:    cfg.TMDBRegion,
			RateLimit: cfg.TMDBRateLimit,
			Timeout:   cfg.TMDBTimeout,
		}, keyStore)
	}
	logging.Info().Str("source", cfg.CatalogSource).Msg("catalog ready")

	// ------------ Ranking ---------------
	engine, err := ranking.NewEngine(ranking.Config{
		YearBase:       cfg.RankingYearBase,
		MinYear:        cfg.RankingMinYear,
		FavoriteGenres: ranking.DefaultFavoriteGenres,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid ranking config")
	}

	svc := service.NewService(
		catalog.NewCached(source, responseCache, cfg.CacheTTL),
		engine,
		keyStore,
		responseCache,
	)

	// ---------------- Server --------------------
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(handler.NewHandler(svc)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	logging.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal().Err(err).Msg("server failed")
	}
	logging.Info().Msg("server stopped")
}

func connectPostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := waitForDB(ctx, repository.NewRepository(pool)); err != nil {
		pool.Close()
		return nil, err
	}
	logging.Info().Msg("connected to PostgreSQL")
	return pool, nil
}

func waitForDB(ctx context.Context, repo *repository.Repository) error {
	for i := 0; i < 30; i++ {
		err := repo.Ping(ctx)
		if err == nil {
			return nil
		}
		logging.Warn().Err(err).Int("attempt", i+1).Msg("waiting for database")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func runMigration(ctx context.Context, pool *pgxpool.Pool, path string) error {
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration %s: %w", path, err)
	}
	logging.Info().Str("file", path).Msg("migration applied")
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool, repo *repository.Repository, force bool) error {
	count, err := repo.CountMovies(ctx)
	if err != nil {
		return err
	}
	if count > 0 && !force {
		logging.Info().Int("movies", count).Msg("database already seeded, skipping")
		return nil
	}
	return seeds.Setup(ctx, pool)
}
