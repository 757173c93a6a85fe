package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"voicenote/internal/notion"
	"voicenote/internal/service"
	"voicenote/internal/service/mocks"
)

func TestDestinationHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(*mocks.MockDestinationService)
		wantStatus int
		wantSample bool
		wantCount  int
	}{
		{
			name: "real workspace pages",
			mockSetup: func(m *mocks.MockDestinationService) {
				m.EXPECT().ListDestinations(gomock.Any()).Return(service.Listing{
					Destinations: []notion.Destination{{ID: "p1", Title: "Inbox"}},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name: "sample listing stays flagged",
			mockSetup: func(m *mocks.MockDestinationService) {
				m.EXPECT().ListDestinations(gomock.Any()).Return(service.Listing{
					Sample:       true,
					Destinations: []notion.Destination{{ID: "sample-inbox", Title: "Sample Inbox"}},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantSample: true,
			wantCount:  1,
		},
		{
			name: "not connected",
			mockSetup: func(m *mocks.MockDestinationService) {
				m.EXPECT().ListDestinations(gomock.Any()).Return(service.Listing{}, service.ErrNotConfigured)
			},
			wantStatus: http.StatusPreconditionFailed,
		},
		{
			name: "remote failure",
			mockSetup: func(m *mocks.MockDestinationService) {
				m.EXPECT().ListDestinations(gomock.Any()).Return(service.Listing{},
					&notion.APIError{StatusCode: http.StatusInternalServerError})
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockDestinationService(ctrl)
			tt.mockSetup(mockService)

			handler := NewDestinationHandler(mockService)
			w := httptest.NewRecorder()
			handler.List(w, httptest.NewRequest(http.MethodGet, "/api/destinations", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("List() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var listing service.Listing
			if err := json.NewDecoder(w.Body).Decode(&listing); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if listing.Sample != tt.wantSample {
				t.Errorf("List() sample = %v, want %v", listing.Sample, tt.wantSample)
			}
			if len(listing.Destinations) != tt.wantCount {
				t.Errorf("List() returned %d destinations, want %d", len(listing.Destinations), tt.wantCount)
			}
		})
	}
}

func TestDestinationHandler_Select(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.MockDestinationService)
		wantStatus int
	}{
		{
			name: "valid selection",
			body: `{"pageId":"page-1","title":"Inbox"}`,
			mockSetup: func(m *mocks.MockDestinationService) {
				m.EXPECT().SelectDestination(gomock.Any(), "page-1", "Inbox").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing pageId",
			body:       `{"title":"Inbox"}`,
			mockSetup:  func(m *mocks.MockDestinationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid JSON body",
			body:       "not json",
			mockSetup:  func(m *mocks.MockDestinationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not connected",
			body: `{"pageId":"page-1"}`,
			mockSetup: func(m *mocks.MockDestinationService) {
				m.EXPECT().SelectDestination(gomock.Any(), "page-1", "").Return(service.ErrNotConfigured)
			},
			wantStatus: http.StatusPreconditionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockDestinationService(ctrl)
			tt.mockSetup(mockService)

			handler := NewDestinationHandler(mockService)
			req := httptest.NewRequest(http.MethodPost, "/api/destinations/select", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Select(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Select() status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
