package domain

import "errors"

var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrAPIKeyMissing  = errors.New("catalog api key not configured")
	ErrEmptyQuery     = errors.New("search query must not be empty")
	ErrMissingMovieID = errors.New("movie id is required")
	ErrInvalidWeights = errors.New("invalid weight configuration")
	ErrUnknownSource  = errors.New("unknown candidate source")
)
