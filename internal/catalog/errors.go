package catalog

import (
	"errors"
	"fmt"
)

// APIError is a non-success response from the remote catalog.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog api %s: %s", e.Endpoint, e.Status)
}

func IsAPIError(err error) bool {
	var target *APIError
	return errors.As(err, &target)
}
