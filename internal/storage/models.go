package storage

import "time"

// CredentialRecord is the persisted Notion connection for this device.
// There is at most one; it lives as namespaced rows in the settings table.
type CredentialRecord struct {
	AccessToken   string
	PageID        string // selected destination page; empty until the user picks one
	PageTitle     string
	OwnerUserID   string
	WorkspaceID   string
	WorkspaceName string
}

// Configured reports whether the record can drive a sync: a token alone
// means "authenticated but unconfigured" until a destination page is chosen.
func (r *CredentialRecord) Configured() bool {
	return r != nil && r.AccessToken != "" && r.PageID != ""
}

// SyncStatus records the outcome of the most recent sync attempt for a note.
// Synced=true means the content was appended to the destination at
// LastSyncAttempt; no later reconciliation against the remote is performed.
type SyncStatus struct {
	Synced          bool
	LastSyncAttempt time.Time
	Error           string
}

// Note is a transcribed voice note in the local store.
type Note struct {
	ID        string // UUID
	Title     string
	Content   string // markdown
	CreatedAt time.Time
	UpdatedAt time.Time

	// SyncStatus is nil until a sync has been attempted. It is replaced
	// wholesale by each new attempt, never partially updated.
	SyncStatus *SyncStatus
}
