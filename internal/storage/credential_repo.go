package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
)

var errEmptyAccessToken = errors.New("credential record requires an access token")

// Settings keys for the Notion credential record. Absence of the access
// token key means "not connected".
const (
	settingsNamespace = "notion."

	keyAccessToken   = settingsNamespace + "access_token"
	keyPageID        = settingsNamespace + "page_id"
	keyPageTitle     = settingsNamespace + "page_title"
	keyOwnerUserID   = settingsNamespace + "owner_user_id"
	keyWorkspaceID   = settingsNamespace + "workspace_id"
	keyWorkspaceName = settingsNamespace + "workspace_name"
)

// CredentialRepo persists the single Notion CredentialRecord in the
// settings table and keeps an in-memory cached copy. The record is always
// read and written whole; the mutex prevents a disconnect racing a save
// from leaving a half-updated record.
type CredentialRepo struct {
	db *sql.DB

	mu     sync.RWMutex
	cached *CredentialRecord
}

// NewCredentialRepo creates a new CredentialRepo.
func NewCredentialRepo(db *sql.DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Load reads the persisted record and refreshes the cache.
// It returns nil (and no error) when no access token is stored.
func (r *CredentialRepo) Load(ctx context.Context) (*CredentialRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT key, value FROM settings WHERE key LIKE ?",
		settingsNamespace+"%",
	)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	defer func() {
		_ = rows.Close()
	}()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, &PersistenceError{Op: "load", Err: err}
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if values[keyAccessToken] == "" {
		r.cached = nil
		return nil, nil
	}

	record := &CredentialRecord{
		AccessToken:   values[keyAccessToken],
		PageID:        values[keyPageID],
		PageTitle:     values[keyPageTitle],
		OwnerUserID:   values[keyOwnerUserID],
		WorkspaceID:   values[keyWorkspaceID],
		WorkspaceName: values[keyWorkspaceName],
	}
	r.cached = record

	copied := *record
	return &copied, nil
}

// Save writes the record atomically, storing non-empty fields and removing
// keys whose field is empty so a reload reconstructs the record exactly.
func (r *CredentialRepo) Save(ctx context.Context, record *CredentialRecord) error {
	if record == nil || strings.TrimSpace(record.AccessToken) == "" {
		return &PersistenceError{Op: "save", Err: errEmptyAccessToken}
	}

	fields := map[string]string{
		keyAccessToken:   record.AccessToken,
		keyPageID:        record.PageID,
		keyPageTitle:     record.PageTitle,
		keyOwnerUserID:   record.OwnerUserID,
		keyWorkspaceID:   record.WorkspaceID,
		keyWorkspaceName: record.WorkspaceName,
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for key, value := range fields {
		if value == "" {
			if _, err := tx.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key); err != nil {
				return &PersistenceError{Op: "save", Err: err}
			}
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
			key, value,
		)
		if err != nil {
			return &PersistenceError{Op: "save", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}

	r.mu.Lock()
	copied := *record
	r.cached = &copied
	r.mu.Unlock()

	return nil
}

// Clear removes the persisted record and the cache. Used on disconnect.
func (r *CredentialRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM settings WHERE key LIKE ?",
		settingsNamespace+"%",
	)
	if err != nil {
		return &PersistenceError{Op: "clear", Err: err}
	}

	r.mu.Lock()
	r.cached = nil
	r.mu.Unlock()

	return nil
}

// Cached returns a copy of the in-memory record, or nil when not connected.
// It does not touch the database.
func (r *CredentialRepo) Cached() *CredentialRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.cached == nil {
		return nil
	}
	copied := *r.cached
	return &copied
}

// IsConfigured reports whether the cached record has both an access token
// and a selected destination page.
func (r *CredentialRepo) IsConfigured() bool {
	return r.Cached().Configured()
}
