package courts

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные корта: название обязательно, цена должна быть больше нуля"
	msgCourtNotFound      = "корт не найден"
	msgCourtInUse         = "у корта есть бронирования, удаление невозможно"
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

// HandleList GET /api/v1/courts
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCourts(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/courts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateCourt(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/courts", err)
		return
	}

	h.logger.Info("POST /admin/courts - Court created: court_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleUpdate PUT /api/v1/admin/courts/{courtId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	courtID, ok := h.courtID(w, r, "PUT /admin/courts/{id}")
	if !ok {
		return
	}

	var req models.CourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/courts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateCourt(r.Context(), courtID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/courts/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/courts/{id} - Court updated: court_id=%d", courtID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// HandleDelete DELETE /api/v1/admin/courts/{courtId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	courtID, ok := h.courtID(w, r, "DELETE /admin/courts/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteCourt(r.Context(), courtID); err != nil {
		h.respondServiceError(w, "DELETE /admin/courts/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/courts/{id} - Court deleted: court_id=%d", courtID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) courtID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid court ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	case errors.Is(err, catalog.ErrCourtNotFound):
		h.logger.Warn("%s - Court not found", op)
		handlers.RespondNotFound(w, msgCourtNotFound)

	case errors.Is(err, catalog.ErrCourtInUse):
		h.logger.Warn("%s - Court in use", op)
		handlers.RespondConflict(w, msgCourtInUse)

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
