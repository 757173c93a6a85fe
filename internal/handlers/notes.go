package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"voicenote/internal/contextutil"
	"voicenote/internal/storage"
)

// NoteHandler handles HTTP requests for the local note store.
type NoteHandler struct {
	notes    storage.NoteStore
	validate *validator.Validate
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes storage.NoteStore) *NoteHandler {
	return &NoteHandler{
		notes:    notes,
		validate: validator.New(),
	}
}

// NoteRequest is the payload for creating or updating a note.
type NoteRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content"`
}

// SyncStatusResponse mirrors the stored per-note sync outcome.
type SyncStatusResponse struct {
	Synced          bool      `json:"synced"`
	LastSyncAttempt time.Time `json:"lastSyncAttempt"`
	Error           string    `json:"error,omitempty"`
}

// NoteResponse is the wire shape of a note.
type NoteResponse struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Content    string              `json:"content"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
	SyncStatus *SyncStatusResponse `json:"syncStatus,omitempty"`
}

func toNoteResponse(note *storage.Note) NoteResponse {
	resp := NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if note.SyncStatus != nil {
		resp.SyncStatus = &SyncStatusResponse{
			Synced:          note.SyncStatus.Synced,
			LastSyncAttempt: note.SyncStatus.LastSyncAttempt,
			Error:           note.SyncStatus.Error,
		}
	}
	return resp
}

// List returns all notes, newest first.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := h.notes.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list notes")
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, toNoteResponse(&notes[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single note by id.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	note, err := h.notes.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load note")
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Create stores a new note.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Title is required and must be at most 200 characters")
		return
	}

	note := &storage.Note{Title: req.Title, Content: req.Content}
	if err := h.notes.Create(ctx, note); err != nil {
		handleServiceError(w, ctx, err, "Failed to create note")
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

// Update rewrites a note's title and content. Editing resets nothing on
// the sync status; the note simply shows as stale until re-synced.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Title is required and must be at most 200 characters")
		return
	}

	note, err := h.notes.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load note")
		return
	}

	note.Title = req.Title
	note.Content = req.Content
	if err := h.notes.Update(ctx, note); err != nil {
		handleServiceError(w, ctx, err, "Failed to update note")
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Delete removes a note.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.notes.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
