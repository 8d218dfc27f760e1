package quote_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/api/middleware"
	quoteReservation "github.com/m04kA/bookminton/internal/usecase/quote_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDetails     = "проверьте имя, телефон и выбранные слоты"
	msgCourtNotFound      = "корт не найден"
	msgSlotNotAvailable   = "выбранный слот уже занят"
)

type Handler struct {
	useCase QuoteReservationUseCase
	logger  Logger
}

func NewHandler(useCase QuoteReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/quote
// Первый шаг формы: проверка данных, расчёт стоимости и реквизиты оплаты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, _ := middleware.GetSession(r.Context())
	useCaseReq, err := req.ToUseCaseRequest(session)
	if err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/quote - Invalid details: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDetails)

		case errors.Is(err, quoteReservation.ErrCourtNotFound):
			h.logger.Warn("POST /reservations/quote - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, quoteReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations/quote - Slot not available: court_id=%d, slots=%v", req.CourtID, req.SlotIDs)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /reservations/quote - Failed to quote: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/quote - Quoted: court_id=%d, hours=%.2f, total=%.0f",
		req.CourtID, result.TotalHours, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
