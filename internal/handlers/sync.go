package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"voicenote/internal/contextutil"
	"voicenote/internal/service"
	"voicenote/internal/storage"
)

// SyncHandler handles HTTP requests that push notes to the destination.
type SyncHandler struct {
	sync  service.SyncService
	notes storage.NoteStore
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(sync service.SyncService, notes storage.NoteStore) *SyncHandler {
	return &SyncHandler{sync: sync, notes: notes}
}

// SyncAll pushes every not-yet-synced note. The response is the batch
// report; per-note errors live on each note's sync status.
func (h *SyncHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	notes, err := h.notes.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load notes")
		return
	}

	report, err := h.sync.SyncAll(ctx, notes)
	if err != nil {
		handleServiceError(w, ctx, err, "Sync failed")
		return
	}

	logger.InfoContext(ctx, "sync batch requested",
		"attempted", report.Attempted, "synced", report.Synced, "failed", report.Failed)
	writeJSON(w, http.StatusOK, report)
}

// SyncOne pushes a single note by id and returns its updated state.
func (h *SyncHandler) SyncOne(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	note, err := h.notes.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load note")
		return
	}

	if err := h.sync.SyncOne(ctx, note); err != nil {
		handleServiceError(w, ctx, err, "Failed to sync note")
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}
