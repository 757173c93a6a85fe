package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"voicenote/internal/contextutil"
	"voicenote/internal/service"
)

// DestinationHandler handles HTTP requests for destination selection.
type DestinationHandler struct {
	destinations service.DestinationService
	validate     *validator.Validate
}

// NewDestinationHandler creates a new DestinationHandler.
func NewDestinationHandler(destinations service.DestinationService) *DestinationHandler {
	return &DestinationHandler{
		destinations: destinations,
		validate:     validator.New(),
	}
}

// SelectDestinationRequest names the page future syncs append to.
type SelectDestinationRequest struct {
	PageID string `json:"pageId" validate:"required"`
	Title  string `json:"title"`
}

// List returns candidate destination pages, most recently edited first.
func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listing, err := h.destinations.ListDestinations(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list destinations")
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// Select records the chosen destination page.
func (h *DestinationHandler) Select(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SelectDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "pageId is required")
		return
	}

	if err := h.destinations.SelectDestination(ctx, req.PageID, req.Title); err != nil {
		handleServiceError(w, ctx, err, "Failed to select destination")
		return
	}

	logger.InfoContext(ctx, "destination selected", "page_id", req.PageID)
	w.WriteHeader(http.StatusNoContent)
}
