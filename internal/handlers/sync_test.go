package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"voicenote/internal/service"
	servicemocks "voicenote/internal/service/mocks"
	"voicenote/internal/storage"
	storagemocks "voicenote/internal/storage/mocks"
)

func TestSyncHandler_SyncAll(t *testing.T) {
	notes := []storage.Note{{ID: "n1"}, {ID: "n2"}}

	tests := []struct {
		name       string
		mockSetup  func(*servicemocks.MockSyncService, *storagemocks.MockNoteStore)
		wantStatus int
		wantReport *service.Report
	}{
		{
			name: "reports batch outcome",
			mockSetup: func(sync *servicemocks.MockSyncService, store *storagemocks.MockNoteStore) {
				store.EXPECT().List(gomock.Any()).Return(notes, nil)
				sync.EXPECT().SyncAll(gomock.Any(), notes).
					Return(service.Report{Attempted: 2, Synced: 1, Failed: 1}, nil)
			},
			wantStatus: http.StatusOK,
			wantReport: &service.Report{Attempted: 2, Synced: 1, Failed: 1},
		},
		{
			name: "overlapping batch rejected",
			mockSetup: func(sync *servicemocks.MockSyncService, store *storagemocks.MockNoteStore) {
				store.EXPECT().List(gomock.Any()).Return(notes, nil)
				sync.EXPECT().SyncAll(gomock.Any(), notes).Return(service.Report{}, service.ErrSyncBusy)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "not configured",
			mockSetup: func(sync *servicemocks.MockSyncService, store *storagemocks.MockNoteStore) {
				store.EXPECT().List(gomock.Any()).Return(notes, nil)
				sync.EXPECT().SyncAll(gomock.Any(), notes).Return(service.Report{}, service.ErrNotConfigured)
			},
			wantStatus: http.StatusPreconditionFailed,
		},
		{
			name: "destination gone",
			mockSetup: func(sync *servicemocks.MockSyncService, store *storagemocks.MockNoteStore) {
				store.EXPECT().List(gomock.Any()).Return(notes, nil)
				sync.EXPECT().SyncAll(gomock.Any(), notes).
					Return(service.Report{}, &service.DestinationMissingError{PageID: "page-1"})
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSync := servicemocks.NewMockSyncService(ctrl)
			mockStore := storagemocks.NewMockNoteStore(ctrl)
			tt.mockSetup(mockSync, mockStore)

			handler := NewSyncHandler(mockSync, mockStore)
			w := httptest.NewRecorder()
			handler.SyncAll(w, httptest.NewRequest(http.MethodPost, "/api/sync", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("SyncAll() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantReport == nil {
				return
			}
			var report service.Report
			if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if report != *tt.wantReport {
				t.Errorf("SyncAll() report = %+v, want %+v", report, *tt.wantReport)
			}
		})
	}
}

func TestSyncHandler_SyncOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	note := &storage.Note{ID: "n1", Title: "Standup"}

	mockStore := storagemocks.NewMockNoteStore(ctrl)
	mockStore.EXPECT().Get(gomock.Any(), "n1").Return(note, nil)
	mockSync := servicemocks.NewMockSyncService(ctrl)
	mockSync.EXPECT().SyncOne(gomock.Any(), note).DoAndReturn(
		func(_ context.Context, n *storage.Note) error {
			n.SyncStatus = &storage.SyncStatus{Synced: true}
			return nil
		})

	handler := NewSyncHandler(mockSync, mockStore)
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/notes/n1/sync", nil), "id", "n1")
	w := httptest.NewRecorder()
	handler.SyncOne(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("SyncOne() status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp NoteResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SyncStatus == nil || !resp.SyncStatus.Synced {
		t.Errorf("SyncOne() response = %+v, want synced status", resp)
	}
}

func TestSyncHandler_SyncOne_AlreadyInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	note := &storage.Note{ID: "n1"}

	mockStore := storagemocks.NewMockNoteStore(ctrl)
	mockStore.EXPECT().Get(gomock.Any(), "n1").Return(note, nil)
	mockSync := servicemocks.NewMockSyncService(ctrl)
	mockSync.EXPECT().SyncOne(gomock.Any(), note).Return(service.ErrSyncInFlight)

	handler := NewSyncHandler(mockSync, mockStore)
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/notes/n1/sync", nil), "id", "n1")
	w := httptest.NewRecorder()
	handler.SyncOne(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("SyncOne() status = %d, want %d", w.Code, http.StatusConflict)
	}
}
