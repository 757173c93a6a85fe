package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_destination_service.go -package=mocks voicenote/internal/service DestinationService

import (
	"context"
	"log/slog"
	"strings"

	"voicenote/internal/notion"
)

// Listing is the result of a destination lookup. Sample is the
// discriminant between real workspace data and the built-in demo list;
// the two are never conflated.
type Listing struct {
	Destinations []notion.Destination `json:"destinations"`
	Sample       bool                 `json:"sample"`
}

// DestinationService lists candidate destination pages and records the
// user's selection on the credential record.
type DestinationService interface {
	// ListDestinations returns candidate pages, most recently edited first.
	ListDestinations(ctx context.Context) (Listing, error)
	// SelectDestination persists the chosen page on the credential record.
	SelectDestination(ctx context.Context, pageID, title string) error
}

// destinationService implements DestinationService.
type destinationService struct {
	client   ContentClient
	creds    Credentials
	demoMode bool
	logger   *slog.Logger
}

// NewDestinationService creates a new DestinationService. With demoMode
// enabled, a failed or unauthenticated listing falls back to sample data
// flagged with Sample=true; otherwise failures surface to the caller.
func NewDestinationService(client ContentClient, creds Credentials, demoMode bool) DestinationService {
	return &destinationService{
		client:   client,
		creds:    creds,
		demoMode: demoMode,
		logger:   slog.Default(),
	}
}

// ListDestinations searches the workspace for candidate pages.
func (s *destinationService) ListDestinations(ctx context.Context) (Listing, error) {
	record := s.creds.Cached()
	if record == nil || record.AccessToken == "" {
		if s.demoMode {
			return sampleListing(), nil
		}
		return Listing{}, ErrNotConfigured
	}

	destinations, err := s.client.Search(ctx, record.AccessToken)
	if err != nil {
		if s.demoMode {
			s.logger.WarnContext(ctx, "destination search failed, serving sample list", "error", err)
			return sampleListing(), nil
		}
		return Listing{}, err
	}

	return Listing{Destinations: destinations}, nil
}

// SelectDestination stores the chosen page id and title. Requires an
// authenticated record; the whole record is rewritten so a reload sees a
// consistent state.
func (s *destinationService) SelectDestination(ctx context.Context, pageID, title string) error {
	if strings.TrimSpace(pageID) == "" {
		return &ValidationError{Field: "pageId", Message: "must not be empty"}
	}

	record := s.creds.Cached()
	if record == nil || record.AccessToken == "" {
		return ErrNotConfigured
	}

	record.PageID = pageID
	record.PageTitle = title
	return s.creds.Save(ctx, record)
}

// sampleListing is the opt-in demo fallback.
func sampleListing() Listing {
	return Listing{
		Sample: true,
		Destinations: []notion.Destination{
			{ID: "sample-inbox", Title: "Sample Inbox", URL: "https://notion.so/sample-inbox"},
			{ID: "sample-journal", Title: "Sample Journal", URL: "https://notion.so/sample-journal"},
			{ID: "sample-meetings", Title: "Sample Meeting Notes", URL: "https://notion.so/sample-meetings"},
		},
	}
}
