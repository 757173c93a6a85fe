package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when a sync is attempted before an
	// access token and destination page are both in place.
	ErrNotConfigured = errors.New("notion sync is not configured")
	// ErrSyncBusy is returned when a sync batch is already running.
	ErrSyncBusy = errors.New("a sync batch is already in progress")
	// ErrSyncInFlight is returned when a sync for the same note is already running.
	ErrSyncInFlight = errors.New("sync for this note is already in flight")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// DestinationMissingError means the configured destination page no longer
// exists remotely (deleted or unshared). The user should re-select one.
type DestinationMissingError struct {
	PageID string
}

func (e *DestinationMissingError) Error() string {
	return fmt.Sprintf("destination page %s no longer exists", e.PageID)
}
