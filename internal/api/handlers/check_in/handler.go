package check_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/bookminton/internal/api/handlers"
	checkIn "github.com/m04kA/bookminton/internal/usecase/check_in"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingToken       = "токен обязателен"
	msgNotFound           = "бронирование не найдено или check-in уже выполнен"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/check-in
// Токен приходит из сканера QR-кода или вводится вручную
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/check-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkIn.ErrInvalidInput):
			h.logger.Warn("POST /admin/check-in - Missing token")
			handlers.RespondBadRequest(w, msgMissingToken)

		case errors.Is(err, checkIn.ErrNotFound):
			h.logger.Warn("POST /admin/check-in - Booking not found for token")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /admin/check-in - Failed to check in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/check-in - Checked in: booking_id=%s, remaining=%s",
		result.Booking.ID, result.Countdown.Label())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
