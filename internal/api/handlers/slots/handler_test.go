package slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/bookminton/internal/service/catalog"
	"github.com/m04kA/bookminton/internal/service/catalog/models"
	"github.com/m04kA/bookminton/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListSlots(ctx context.Context, courtID int64, date string) (*models.SlotListResponse, error) {
	args := m.Called(ctx, courtID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SlotListResponse), args.Error(1)
}

func (m *mockService) CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SlotResponse), args.Error(1)
}

func (m *mockService) DeleteSlot(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func do(svc *mockService, method, target, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/courts/{courtId}/slots", h.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/admin/slots", h.HandleCreate).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/admin/slots/{slotId}", h.HandleDelete).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestHandler_HandleList(t *testing.T) {
	svc := &mockService{}
	svc.On("ListSlots", mock.Anything, int64(1), "2025-06-01").Return(&models.SlotListResponse{
		Slots: []models.SlotResponse{{ID: 3, CourtID: 1, StartTime: "08:00", EndTime: "09:00", DurationHours: 1}},
	}, nil)

	rec := do(svc, http.MethodGet, "/api/v1/admin/courts/1/slots?date=2025-06-01", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"startTime":"08:00"`)
}

func TestHandler_HandleCreate(t *testing.T) {
	svc := &mockService{}
	req := &models.CreateSlotRequest{CourtID: 1, Date: "2025-06-01", StartTime: "08:00", EndTime: "09:00"}
	svc.On("CreateSlot", mock.Anything, req).Return(&models.SlotResponse{ID: 10, CourtID: 1}, nil)

	rec := do(svc, http.MethodPost, "/api/v1/admin/slots",
		`{"courtId":1,"date":"2025-06-01","startTime":"08:00","endTime":"09:00"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":10`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setup      func(svc *mockService)
		wantStatus int
	}{
		{name: "list bad court", method: http.MethodGet, target: "/api/v1/admin/courts/x/slots?date=2025-06-01", wantStatus: http.StatusBadRequest},
		{
			name: "list bad date", method: http.MethodGet, target: "/api/v1/admin/courts/1/slots?date=bad",
			setup: func(svc *mockService) {
				svc.On("ListSlots", mock.Anything, int64(1), "bad").Return(nil, catalog.ErrInvalidInput)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "create overlap", method: http.MethodPost, target: "/api/v1/admin/slots", body: `{"courtId":1}`,
			setup: func(svc *mockService) {
				svc.On("CreateSlot", mock.Anything, mock.Anything).Return(nil, catalog.ErrSlotOverlap)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "create unknown court", method: http.MethodPost, target: "/api/v1/admin/slots", body: `{"courtId":9}`,
			setup: func(svc *mockService) {
				svc.On("CreateSlot", mock.Anything, mock.Anything).Return(nil, catalog.ErrCourtNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "delete reserved", method: http.MethodDelete, target: "/api/v1/admin/slots/3",
			setup: func(svc *mockService) {
				svc.On("DeleteSlot", mock.Anything, int64(3)).Return(catalog.ErrSlotReserved)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "delete missing", method: http.MethodDelete, target: "/api/v1/admin/slots/3",
			setup: func(svc *mockService) {
				svc.On("DeleteSlot", mock.Anything, int64(3)).Return(catalog.ErrSlotNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "delete ok", method: http.MethodDelete, target: "/api/v1/admin/slots/3",
			setup: func(svc *mockService) {
				svc.On("DeleteSlot", mock.Anything, int64(3)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.setup != nil {
				tt.setup(svc)
			}

			assert.Equal(t, tt.wantStatus, do(svc, tt.method, tt.target, tt.body).Code)
		})
	}
}
