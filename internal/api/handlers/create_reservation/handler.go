package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/api/middleware"
	"github.com/m04kA/bookminton/internal/domain"
	createReservation "github.com/m04kA/bookminton/internal/usecase/create_reservation"
)

const (
	msgInvalidForm      = "некорректная форма, ожидается multipart/form-data"
	msgInvalidFields    = "некорректные поля формы: courtId, date (YYYY-MM-DD) и slotIds обязательны"
	msgMissingProof     = "загрузите подтверждение оплаты"
	msgProofTooLarge    = "файл подтверждения оплаты превышает 5 МБ"
	msgValidationFailed = "проверьте данные формы и подтверждение оплаты (JPEG, PNG или WebP)"
	msgCourtNotFound    = "корт не найден"
	msgUploadFailed     = "не удалось загрузить подтверждение оплаты, попробуйте ещё раз"
	msgSlotConflict     = "один из выбранных слотов уже забронирован"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
// multipart/form-data: courtId, date, slotIds, customerName, customerPhone, paymentProof
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := handlers.ParseMultipart(w, r, domain.MaxProofSizeBytes); err != nil {
		h.logger.Warn("POST /reservations - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	proof, err := handlers.ReadFormFile(r, fieldPaymentProof, domain.MaxProofSizeBytes)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid payment proof: %v", err)
		switch {
		case errors.Is(err, handlers.ErrMissingFile):
			handlers.RespondBadRequest(w, msgMissingProof)
		case errors.Is(err, handlers.ErrFileTooLarge):
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgProofTooLarge)
		default:
			handlers.RespondBadRequest(w, msgInvalidForm)
		}
		return
	}

	session, _ := middleware.GetSession(r.Context())
	useCaseReq, err := ToUseCaseRequest(r, proof, session)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrValidation):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createReservation.ErrCourtNotFound):
			h.logger.Warn("POST /reservations - Court not found: court_id=%d", useCaseReq.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createReservation.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: court_id=%d, slots=%v", useCaseReq.CourtID, useCaseReq.SlotIDs)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createReservation.ErrUpload):
			h.logger.Error("POST /reservations - Upload failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: court_id=%d, error=%v", useCaseReq.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := FromUseCaseResponse(result)
	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, court_id=%d, bookings=%d",
		resp.ReservationID, useCaseReq.CourtID, len(resp.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
