package slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/service/catalog"
	"github.com/m04kA/bookminton/internal/service/catalog/models"
)

const (
	msgInvalidCourtID     = "некорректный ID корта"
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные слота, ожидается date=YYYY-MM-DD и время HH:MM, начало раньше конца"
	msgCourtNotFound      = "корт не найден"
	msgSlotNotFound       = "слот не найден"
	msgSlotOverlap        = "слот пересекается с существующим слотом"
	msgSlotReserved       = "слот зарезервирован, удаление невозможно"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/courts/{courtId}/slots?date=YYYY-MM-DD
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/courts/{id}/slots - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	result, err := h.service.ListSlots(r.Context(), courtID, r.URL.Query().Get("date"))
	if err != nil {
		h.respondServiceError(w, "GET /admin/courts/{id}/slots", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/slots
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateSlot(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/slots", err)
		return
	}

	h.logger.Info("POST /admin/slots - Slot created: slot_id=%d, court_id=%d", created.ID, created.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleDelete DELETE /api/v1/admin/slots/{slotId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), slotID); err != nil {
		h.respondServiceError(w, "DELETE /admin/slots/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/slots/{id} - Slot deleted: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	case errors.Is(err, catalog.ErrCourtNotFound):
		h.logger.Warn("%s - Court not found", op)
		handlers.RespondNotFound(w, msgCourtNotFound)

	case errors.Is(err, catalog.ErrSlotNotFound):
		h.logger.Warn("%s - Slot not found", op)
		handlers.RespondNotFound(w, msgSlotNotFound)

	case errors.Is(err, catalog.ErrSlotOverlap):
		h.logger.Warn("%s - Slot overlap: %v", op, err)
		handlers.RespondConflict(w, msgSlotOverlap)

	case errors.Is(err, catalog.ErrSlotReserved):
		h.logger.Warn("%s - Slot reserved", op)
		handlers.RespondConflict(w, msgSlotReserved)

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
