package get_arena

import (
	"net/http"

	"github.com/m04kA/bookminton/internal/api/handlers"
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

// Handle GET /api/v1/arena
// Публичный профиль арены: брендинг, реквизиты оплаты, галерея
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	arena, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /arena - Failed to get arena: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, arena)
}
