package handler

import (
	"encoding/json"
	"net/http"

	"github.com/actuallystonmai/movie-recommender/internal/logging"
	"github.com/actuallystonmai/movie-recommender/internal/service"
)

type Handler struct {
	service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// writeServiceError maps a service error onto a status code and logs
// anything that is not the caller's fault.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := service.CategorizeError(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().Err(err).Str("code", code).Msg("request failed")
	}
	writeError(w, status, code, msg)
}

func statusFor(code string) int {
	switch code {
	case "invalid_weights", "invalid_parameter":
		return http.StatusBadRequest
	case "movie_not_found":
		return http.StatusNotFound
	case "api_key_missing":
		return http.StatusPreconditionFailed
	case "catalog_error":
		return http.StatusBadGateway
	case "request_timeout":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NotFound answers unregistered paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not_found", "route "+r.URL.Path+" does not exist")
}
