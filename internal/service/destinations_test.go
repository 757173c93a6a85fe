package service_test

import (
	"context"
	"errors"
	"testing"

	"voicenote/internal/notion"
	"voicenote/internal/service"
	"voicenote/internal/service/mocks"
	"voicenote/internal/storage"

	"go.uber.org/mock/gomock"
)

func TestDestinationService_ListDestinations(t *testing.T) {
	searchErr := &notion.NetworkError{Err: errors.New("timeout")}
	pages := []notion.Destination{
		{ID: "page-1", Title: "Inbox", URL: "https://notion.so/page-1"},
	}

	tests := []struct {
		name       string
		demoMode   bool
		record     *storage.CredentialRecord
		mockSetup  func(client *mocks.MockContentClient)
		wantErr    error
		wantSample bool
		wantCount  int
	}{
		{
			name:   "lists real pages when authenticated",
			record: &storage.CredentialRecord{AccessToken: "tok_a"},
			mockSetup: func(client *mocks.MockContentClient) {
				client.EXPECT().Search(gomock.Any(), "tok_a").Return(pages, nil)
			},
			wantCount: 1,
		},
		{
			name:    "unauthenticated without demo mode",
			record:  nil,
			wantErr: service.ErrNotConfigured,
		},
		{
			name:   "search failure surfaces without demo mode",
			record: &storage.CredentialRecord{AccessToken: "tok_a"},
			mockSetup: func(client *mocks.MockContentClient) {
				client.EXPECT().Search(gomock.Any(), "tok_a").Return(nil, searchErr)
			},
			wantErr: searchErr,
		},
		{
			name:     "search failure falls back to flagged sample list in demo mode",
			demoMode: true,
			record:   &storage.CredentialRecord{AccessToken: "tok_a"},
			mockSetup: func(client *mocks.MockContentClient) {
				client.EXPECT().Search(gomock.Any(), "tok_a").Return(nil, searchErr)
			},
			wantSample: true,
			wantCount:  3,
		},
		{
			name:       "unauthenticated demo mode serves sample list",
			demoMode:   true,
			record:     nil,
			wantSample: true,
			wantCount:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockContentClient(ctrl)
			creds := mocks.NewMockCredentials(ctrl)
			creds.EXPECT().Cached().Return(tt.record)
			if tt.mockSetup != nil {
				tt.mockSetup(client)
			}

			svc := service.NewDestinationService(client, creds, tt.demoMode)
			listing, err := svc.ListDestinations(context.Background())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ListDestinations() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ListDestinations() unexpected error: %v", err)
			}
			if listing.Sample != tt.wantSample {
				t.Errorf("ListDestinations() sample = %v, want %v", listing.Sample, tt.wantSample)
			}
			if len(listing.Destinations) != tt.wantCount {
				t.Errorf("ListDestinations() returned %d destinations, want %d",
					len(listing.Destinations), tt.wantCount)
			}
		})
	}
}

func TestDestinationService_SelectDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockContentClient(ctrl)
	creds := mocks.NewMockCredentials(ctrl)

	creds.EXPECT().Cached().Return(&storage.CredentialRecord{
		AccessToken:   "tok_a",
		WorkspaceID:   "ws-1",
		WorkspaceName: "Acme Notes",
	})
	creds.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *storage.CredentialRecord) error {
			if record.PageID != "page-9" || record.PageTitle != "Journal" {
				t.Errorf("Save() record = %+v", record)
			}
			if record.AccessToken != "tok_a" || record.WorkspaceID != "ws-1" {
				t.Error("Save() must preserve the rest of the record")
			}
			return nil
		})

	svc := service.NewDestinationService(client, creds, false)
	if err := svc.SelectDestination(context.Background(), "page-9", "Journal"); err != nil {
		t.Fatalf("SelectDestination() unexpected error: %v", err)
	}
}

func TestDestinationService_SelectDestination_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockContentClient(ctrl)
	creds := mocks.NewMockCredentials(ctrl)

	svc := service.NewDestinationService(client, creds, false)

	err := svc.SelectDestination(context.Background(), "  ", "Journal")
	var validationErr *service.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "pageId" {
		t.Errorf("SelectDestination() error = %v, want pageId validation error", err)
	}
}

func TestDestinationService_SelectDestination_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockContentClient(ctrl)
	creds := mocks.NewMockCredentials(ctrl)
	creds.EXPECT().Cached().Return(nil)

	svc := service.NewDestinationService(client, creds, false)
	if err := svc.SelectDestination(context.Background(), "page-9", "Journal"); !errors.Is(err, service.ErrNotConfigured) {
		t.Errorf("SelectDestination() error = %v, want ErrNotConfigured", err)
	}
}
