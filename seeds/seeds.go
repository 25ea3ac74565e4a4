package seeds

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
	"github.com/actuallystonmai/movie-recommender/internal/logging"
)

// Genre ids follow the remote catalog so both sources rank alike.
var Genres = []domain.Genre{
	{ID: 28, Name: "Action"},
	{ID: 18, Name: "Drama"},
	{ID: 35, Name: "Comedy"},
	{ID: 53, Name: "Thriller"},
	{ID: 878, Name: "Science-Fiction"},
	{ID: 12, Name: "Adventure"},
	{ID: 80, Name: "Crime"},
}

var titles = map[int][]string{
	28: {
		"Die Hard", "Mad Max: Fury Road", "John Wick", "The Dark Knight",
		"Gladiator", "Top Gun: Maverick", "The Raid", "Mission: Impossible",
		"Casino Royale", "The Avengers",
	},
	18: {
		"The Shawshank Redemption", "Forrest Gump", "The Godfather",
		"Schindler's List", "A Beautiful Mind", "12 Angry Men",
		"Parasite", "Moonlight", "Whiplash", "The Green Mile",
	},
	35: {
		"Superbad", "The Hangover", "Bridesmaids", "Step Brothers",
		"Anchorman", "Mean Girls", "Borat", "Hot Fuzz",
		"Groundhog Day", "The Grand Budapest Hotel",
	},
	53: {
		"Se7en", "Gone Girl", "Zodiac", "Prisoners",
		"Sicario", "No Country for Old Men", "Nightcrawler",
		"Shutter Island", "The Silence of the Lambs", "Oldboy",
	},
	878: {
		"Blade Runner 2049", "Interstellar", "The Matrix", "Arrival",
		"Dune", "Ex Machina", "Alien", "Inception",
		"Edge of Tomorrow", "2001: A Space Odyssey",
	},
}

// primary genres carry titles; the rest are sprinkled on as secondary genres
var primaryGenres = []int{28, 18, 35, 53, 878}

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	logger := logging.WithComponent("seed")
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	logger.Info().Msg("truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE movie_genres, movies, genres RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	logger.Info().Int("count", len(Genres)).Msg("inserting genres")
	if err := seedGenres(ctx, pool); err != nil {
		return fmt.Errorf("seed genres: %w", err)
	}

	logger.Info().Msg("inserting movies")
	if err := seedMovies(ctx, pool, rng, 50); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}

	logger.Info().Msg("seeding complete")
	return nil
}

func seedGenres(ctx context.Context, pool *pgxpool.Pool) error {
	rows := []string{}
	args := []any{}
	for _, g := range Genres {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
		args = append(args, g.ID, g.Name)
	}

	_, err := pool.Exec(ctx, "INSERT INTO genres (id, name) VALUES "+strings.Join(rows, ", "), args...)
	return err
}

func seedMovies(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	movieRows := []string{}
	movieArgs := []any{}
	genreRows := []string{}
	genreArgs := []any{}

	for i := 0; i < n; i++ {
		id := int64(i + 1)
		genre := primaryGenres[i%len(primaryGenres)]
		titleList := titles[genre]
		title := titleList[(i/len(primaryGenres))%len(titleList)]

		popularity := math.Round(powerLawScore(rng)*50000) / 100
		voteAverage := math.Round((3+rng.Float64()*6.5)*10) / 10
		voteCount := int(math.Pow(10, 1+rng.Float64()*4))

		// roughly one movie in nine has no known release date
		var releaseDate *time.Time
		if rng.Intn(9) != 0 {
			d := time.Date(1950+rng.Intn(76), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
			releaseDate = &d
		}

		base := len(movieArgs)
		movieRows = append(movieRows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		movieArgs = append(movieArgs, id, title, popularity, voteAverage, voteCount, releaseDate)

		movieGenres := []int{genre}
		if rng.Float64() < 0.5 {
			extra := Genres[rng.Intn(len(Genres))].ID
			if extra != genre {
				movieGenres = append(movieGenres, extra)
			}
		}
		for _, g := range movieGenres {
			gb := len(genreArgs)
			genreRows = append(genreRows, fmt.Sprintf("($%d, $%d)", gb+1, gb+2))
			genreArgs = append(genreArgs, id, g)
		}
	}

	if len(movieRows) == 0 {
		return nil
	}

	query := "INSERT INTO movies (id, title, popularity, vote_average, vote_count, release_date) VALUES " +
		strings.Join(movieRows, ", ")
	if _, err := pool.Exec(ctx, query, movieArgs...); err != nil {
		return err
	}

	// keep BIGSERIAL ahead of the explicit ids
	if _, err := pool.Exec(ctx, `SELECT setval('movies_id_seq', (SELECT MAX(id) FROM movies))`); err != nil {
		return err
	}

	query = "INSERT INTO movie_genres (movie_id, genre_id) VALUES " + strings.Join(genreRows, ", ")
	_, err := pool.Exec(ctx, query, genreArgs...)
	return err
}

func powerLawScore(rng *rand.Rand) float64 {
	u := rng.Float64()
	if u == 0 {
		u = 0.001
	}
	raw := math.Pow(u, 2.0)
	if raw < 0.01 {
		raw = 0.01
	}
	return math.Round(raw*100) / 100
}
