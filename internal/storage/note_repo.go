package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_store.go -package=mocks voicenote/internal/storage NoteStore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NoteStore defines the interface for note storage operations.
type NoteStore interface {
	// List returns all notes, newest first.
	List(ctx context.Context) ([]Note, error)
	// Get returns a note by id. Returns ErrNotFound if not found.
	Get(ctx context.Context, id string) (*Note, error)
	// Create inserts a new note, assigning an id and timestamps.
	Create(ctx context.Context, note *Note) error
	// Update rewrites title and content of an existing note.
	Update(ctx context.Context, note *Note) error
	// Delete removes a note by id. Returns ErrNotFound if not found.
	Delete(ctx context.Context, id string) error
	// UpdateSyncStatus replaces the note's sync status after an attempt.
	UpdateSyncStatus(ctx context.Context, id string, status SyncStatus) error
}

// NoteRepo provides methods for note operations.
// It implements the NoteStore interface.
type NoteRepo struct {
	db *sql.DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

const noteColumns = "id, title, content, created_at, updated_at, synced, last_sync_attempt, sync_error"

// List returns all notes, newest first.
func (r *NoteRepo) List(ctx context.Context) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+noteColumns+" FROM notes ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, &PersistenceError{Op: "list notes", Err: err}
	}
	defer func() {
		_ = rows.Close()
	}()

	var notes []Note
	for rows.Next() {
		note, err := scanNote(rows.Scan)
		if err != nil {
			return nil, &PersistenceError{Op: "list notes", Err: err}
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list notes", Err: err}
	}

	return notes, nil
}

// Get returns a note by id. Returns ErrNotFound if not found.
func (r *NoteRepo) Get(ctx context.Context, id string) (*Note, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+noteColumns+" FROM notes WHERE id = ?", id,
	)
	note, err := scanNote(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get note", Err: err}
	}
	return note, nil
}

// Create inserts a new note. A missing id is generated; timestamps are set
// to now. The sync status starts absent.
func (r *NoteRepo) Create(ctx context.Context, note *Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, title, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		note.ID, note.Title, note.Content,
		note.CreatedAt.Format(time.RFC3339Nano), note.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return &PersistenceError{Op: "create note", Err: err}
	}

	return nil
}

// Update rewrites title and content of an existing note and bumps updated_at.
func (r *NoteRepo) Update(ctx context.Context, note *Note) error {
	note.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?",
		note.Title, note.Content, note.UpdatedAt.Format(time.RFC3339Nano), note.ID,
	)
	if err != nil {
		return &PersistenceError{Op: "update note", Err: err}
	}
	return requireRow(res, "update note")
}

// Delete removes a note by id. Returns ErrNotFound if not found.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return &PersistenceError{Op: "delete note", Err: err}
	}
	return requireRow(res, "delete note")
}

// UpdateSyncStatus replaces the note's sync status columns wholesale after
// a sync attempt, success or failure.
func (r *NoteRepo) UpdateSyncStatus(ctx context.Context, id string, status SyncStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE notes SET synced = ?, last_sync_attempt = ?, sync_error = ? WHERE id = ?",
		boolToInt(status.Synced), status.LastSyncAttempt.Format(time.RFC3339Nano), status.Error, id,
	)
	if err != nil {
		return &PersistenceError{Op: "update sync status", Err: err}
	}
	return requireRow(res, "update sync status")
}

// scanNote reads a note row; sync status is reconstructed only when a sync
// attempt has been recorded.
func scanNote(scan func(dest ...any) error) (*Note, error) {
	var note Note
	var createdAt, updatedAt string
	var synced int
	var lastAttempt sql.NullString
	var syncErr string

	if err := scan(&note.ID, &note.Title, &note.Content, &createdAt, &updatedAt,
		&synced, &lastAttempt, &syncErr); err != nil {
		return nil, err
	}

	var err error
	note.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	note.UpdatedAt, err = parseTimestamp(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	if lastAttempt.Valid && lastAttempt.String != "" {
		attemptedAt, err := parseTimestamp(lastAttempt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last_sync_attempt: %w", err)
		}
		note.SyncStatus = &SyncStatus{
			Synced:          synced != 0,
			LastSyncAttempt: attemptedAt,
			Error:           syncErr,
		}
	}

	return &note, nil
}

// parseTimestamp accepts both RFC3339 and the SQLite DATETIME format.
func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", raw)
}

func requireRow(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
