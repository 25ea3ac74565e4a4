package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

// PUT /settings/api-key
func (h *Handler) PutAPIKey(w http.ResponseWriter, r *http.Request) {
	var req APIKeyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be {\"api_key\": \"...\"}")
		return
	}

	if err := h.service.SetAPIKey(r.Context(), req.APIKey); err != nil {
		if errors.Is(err, domain.ErrAPIKeyMissing) {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "api_key must not be empty")
			return
		}
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, APIKeyStatusResponse{Configured: true})
}

// GET /settings/api-key
func (h *Handler) GetAPIKeyStatus(w http.ResponseWriter, r *http.Request) {
	ok, err := h.service.APIKeyConfigured(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, APIKeyStatusResponse{Configured: ok})
}
