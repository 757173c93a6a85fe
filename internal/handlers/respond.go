package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"voicenote/internal/contextutil"
	"voicenote/internal/notion"
	"voicenote/internal/service"
	"voicenote/internal/storage"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// handleServiceError maps service and storage errors to HTTP status codes.
// Per-note sync errors never surface as stack traces; callers see counts
// and short messages only.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	var missingErr *service.DestinationMissingError
	if errors.As(err, &missingErr) {
		writeError(w, http.StatusConflict, "Configured destination no longer exists, please select a new one")
		return
	}

	switch {
	case errors.Is(err, service.ErrNotConfigured):
		writeError(w, http.StatusPreconditionFailed, "Notion sync is not configured")
	case errors.Is(err, service.ErrSyncBusy):
		writeError(w, http.StatusConflict, "A sync is already in progress")
	case errors.Is(err, service.ErrSyncInFlight):
		writeError(w, http.StatusConflict, "This note is already being synced")
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "Resource not found")
	default:
		var netErr *notion.NetworkError
		var apiErr *notion.APIError
		if errors.As(err, &netErr) || errors.As(err, &apiErr) {
			writeError(w, http.StatusBadGateway, "Remote workspace call failed")
			return
		}
		writeError(w, http.StatusInternalServerError, defaultMsg)
	}
}
