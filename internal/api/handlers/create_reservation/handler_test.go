package create_reservation

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/bookminton/internal/domain"
	createReservation "github.com/m04kA/bookminton/internal/usecase/create_reservation"
	"github.com/m04kA/bookminton/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createReservation.Response), args.Error(1)
}

var pngProof = []byte("\x89PNG\r\n\x1a\nimage-bytes")

func formRequest(t *testing.T, fields map[string][]string, proof []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(name, v))
		}
	}
	if proof != nil {
		part, err := mw.CreateFormFile("paymentProof", "transfer.png")
		require.NoError(t, err)
		_, err = part.Write(proof)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func validFields() map[string][]string {
	return map[string][]string{
		"courtId":       {"1"},
		"date":          {"2025-06-01"},
		"slotIds":       {"10", "11,12"},
		"customerName":  {"Ann"},
		"customerPhone": {"081234567"},
	}
}

func TestHandler_Handle(t *testing.T) {
	uc := &mockUseCase{}
	reservationID := uuid.New()
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		ID:            uuid.New(),
		ReservationID: reservationID,
		CourtID:       1,
		CustomerName:  "Ann",
		StartAt:       start,
		EndAt:         start.Add(time.Hour),
		Status:        domain.BookingReserved,
		CheckInToken:  "tok",
	}

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.CourtID == 1 &&
			assert.ObjectsAreEqual([]int64{10, 11, 12}, req.SlotIDs) &&
			req.Proof.ContentType == "image/png" &&
			req.Proof.FileName == "transfer.png" &&
			req.Session == nil
	})).Return(&createReservation.Response{
		Bookings: []*domain.Booking{booking},
		Receipt:  &domain.Receipt{ReservationID: reservationID, Date: start},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, formRequest(t, validFields(), pngProof))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reservationId":"`+reservationID.String()+`"`)
	assert.Contains(t, rec.Body.String(), `"checkInToken":"tok"`)
	uc.AssertExpectations(t)
}

func TestHandler_Handle_FormErrors(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string][]string
		proof      []byte
		wantStatus int
	}{
		{name: "missing proof", fields: validFields(), wantStatus: http.StatusBadRequest},
		{name: "bad court id", fields: map[string][]string{"courtId": {"x"}, "date": {"2025-06-01"}}, proof: pngProof, wantStatus: http.StatusBadRequest},
		{name: "bad date", fields: map[string][]string{"courtId": {"1"}, "date": {"tomorrow"}}, proof: pngProof, wantStatus: http.StatusBadRequest},
		{name: "bad slot ids", fields: map[string][]string{"courtId": {"1"}, "date": {"2025-06-01"}, "slotIds": {"1,a"}}, proof: pngProof, wantStatus: http.StatusBadRequest},
		{name: "proof too large", fields: validFields(), proof: bytes.Repeat([]byte("a"), domain.MaxProofSizeBytes+1), wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, formRequest(t, tt.fields, tt.proof))

			assert.Equal(t, tt.wantStatus, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: createReservation.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "court not found", err: createReservation.ErrCourtNotFound, wantStatus: http.StatusNotFound},
		{name: "slot conflict", err: createReservation.ErrSlotConflict, wantStatus: http.StatusConflict},
		{name: "upload", err: createReservation.ErrUpload, wantStatus: http.StatusBadGateway},
		{name: "persistence", err: createReservation.ErrPersistence, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, formRequest(t, validFields(), pngProof))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
