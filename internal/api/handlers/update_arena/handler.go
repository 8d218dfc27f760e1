package update_arena

import (
	"errors"
	"net/http"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/service/arena"
	"github.com/m04kA/bookminton/internal/service/arena/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные профиля: название до 100 символов, адрес до 255 символов"
)

type Handler struct {
	service ArenaService
	logger  Logger
}

func NewHandler(service ArenaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/arena
// Обновляются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/arena - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), &req)
	if err != nil {
		if errors.Is(err, arena.ErrInvalidInput) {
			h.logger.Warn("PATCH /admin/arena - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("PATCH /admin/arena - Failed to update arena: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /admin/arena - Arena updated: name=%s", updated.Name)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
