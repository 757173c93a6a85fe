package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_content_client.go -package=mocks voicenote/internal/service ContentClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_credentials.go -package=mocks voicenote/internal/service Credentials
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_sync_service.go -package=mocks voicenote/internal/service SyncService

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"voicenote/internal/notion"
	"voicenote/internal/storage"
)

// ContentClient is the slice of the remote content API the orchestrator
// needs. This interface is defined from the service layer's perspective
// (consumer-first).
type ContentClient interface {
	// Search lists candidate destination pages.
	Search(ctx context.Context, token string) ([]notion.Destination, error)
	// AppendParagraph appends a plain-text paragraph to a page.
	AppendParagraph(ctx context.Context, token, pageID, text string) error
	// RetrievePage probes whether a page still exists.
	RetrievePage(ctx context.Context, token, pageID string) error
}

// Credentials exposes the cached credential record. The record is read
// whole; callers never see partial field updates.
type Credentials interface {
	Cached() *storage.CredentialRecord
	IsConfigured() bool
	Save(ctx context.Context, record *storage.CredentialRecord) error
}

// Report aggregates the outcome of a sync batch. Per-note errors are
// retained on each note's sync status, never surfaced as a stack trace.
type Report struct {
	Attempted int `json:"attempted"`
	Synced    int `json:"synced"`
	Failed    int `json:"failed"`
}

// SyncService decides per-note sync attempts and records their outcomes.
type SyncService interface {
	// EnsureDestinationReady probes the configured destination before a batch.
	EnsureDestinationReady(ctx context.Context) error
	// SyncOne appends a single note to the destination and records the outcome.
	SyncOne(ctx context.Context, note *storage.Note) error
	// SyncAll syncs every not-yet-synced note sequentially, continuing past
	// per-note failures.
	SyncAll(ctx context.Context, notes []storage.Note) (Report, error)
}

// syncService implements SyncService.
type syncService struct {
	client ContentClient
	creds  Credentials
	notes  storage.NoteStore
	logger *slog.Logger

	// batchMu serializes SyncAll invocations; an overlapping batch is
	// rejected rather than interleaved.
	batchMu sync.Mutex

	// inFlight guards against concurrent attempts for the same note id.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewSyncService creates a new SyncService.
func NewSyncService(client ContentClient, creds Credentials, notes storage.NoteStore) SyncService {
	return &syncService{
		client:   client,
		creds:    creds,
		notes:    notes,
		logger:   slog.Default(),
		inFlight: make(map[string]struct{}),
	}
}

// EnsureDestinationReady verifies the configured destination page still
// exists. A remote 404 maps to DestinationMissingError so the UI can
// prompt for re-selection.
func (s *syncService) EnsureDestinationReady(ctx context.Context) error {
	record := s.creds.Cached()
	if !record.Configured() {
		return ErrNotConfigured
	}

	err := s.client.RetrievePage(ctx, record.AccessToken, record.PageID)
	if err == nil {
		return nil
	}
	if notion.IsNotFound(err) {
		return &DestinationMissingError{PageID: record.PageID}
	}
	return fmt.Errorf("destination probe failed: %w", err)
}

// SyncOne appends the note to the configured destination. The configured
// check runs before any network call. The note's sync status is replaced
// after the attempt, success or failure, and failures are re-raised so a
// batch caller can aggregate them.
func (s *syncService) SyncOne(ctx context.Context, note *storage.Note) error {
	record := s.creds.Cached()
	if !record.Configured() {
		return ErrNotConfigured
	}

	if !s.acquire(note.ID) {
		return ErrSyncInFlight
	}
	defer s.release(note.ID)

	attemptedAt := time.Now().UTC()
	text := formatNote(note, attemptedAt)

	appendErr := s.client.AppendParagraph(ctx, record.AccessToken, record.PageID, text)

	status := storage.SyncStatus{
		Synced:          appendErr == nil,
		LastSyncAttempt: attemptedAt,
	}
	if appendErr != nil {
		status.Error = appendErr.Error()
	}

	if err := s.notes.UpdateSyncStatus(ctx, note.ID, status); err != nil {
		if appendErr != nil {
			// The append failure is the primary error; the bookkeeping
			// failure still gets logged, never swallowed silently.
			s.logger.ErrorContext(ctx, "failed to record sync failure", "note_id", note.ID, "error", err)
			return fmt.Errorf("failed to sync note %s: %w", note.ID, appendErr)
		}
		return err
	}
	note.SyncStatus = &status

	if appendErr != nil {
		return fmt.Errorf("failed to sync note %s: %w", note.ID, appendErr)
	}
	return nil
}

// SyncAll filters out already-synced notes, probes the destination once,
// then syncs the remainder sequentially. It never stops early on a
// per-note failure; sync volume is small and the counts tell the story.
// An overlapping invocation is rejected with ErrSyncBusy.
func (s *syncService) SyncAll(ctx context.Context, notes []storage.Note) (Report, error) {
	if !s.batchMu.TryLock() {
		return Report{}, ErrSyncBusy
	}
	defer s.batchMu.Unlock()

	var pending []storage.Note
	for _, note := range notes {
		if note.SyncStatus != nil && note.SyncStatus.Synced {
			continue
		}
		pending = append(pending, note)
	}
	if len(pending) == 0 {
		return Report{}, nil
	}

	if err := s.EnsureDestinationReady(ctx); err != nil {
		return Report{}, err
	}

	report := Report{Attempted: len(pending)}
	for i := range pending {
		if err := s.SyncOne(ctx, &pending[i]); err != nil {
			s.logger.WarnContext(ctx, "note sync failed", "note_id", pending[i].ID, "error", err)
			report.Failed++
			continue
		}
		report.Synced++
	}

	s.logger.InfoContext(ctx, "sync batch finished",
		"attempted", report.Attempted, "synced", report.Synced, "failed", report.Failed)
	return report, nil
}

func (s *syncService) acquire(noteID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[noteID]; busy {
		return false
	}
	s.inFlight[noteID] = struct{}{}
	return true
}

func (s *syncService) release(noteID string) {
	s.mu.Lock()
	delete(s.inFlight, noteID)
	s.mu.Unlock()
}
