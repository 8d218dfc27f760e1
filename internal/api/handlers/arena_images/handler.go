package arena_images

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/internal/service/arena"
	"github.com/m04kA/bookminton/internal/service/arena/models"
)

const (
	fieldImage = "image"

	msgInvalidForm    = "некорректная форма, ожидается multipart/form-data с полем image"
	msgFileTooLarge   = "изображение превышает 5 МБ"
	msgInvalidImage   = "допустимы только изображения JPEG, PNG или WebP"
	msgUploadFailed   = "не удалось загрузить изображение, попробуйте ещё раз"
	msgInvalidImageID = "некорректный ID изображения"
	msgImageNotFound  = "изображение не найдено"
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

// HandleLogo PUT /api/v1/admin/arena/logo
func (h *Handler) HandleLogo(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /admin/arena/logo"

	img, ok := h.readImage(w, r, op)
	if !ok {
		return
	}

	resp, err := h.service.UploadLogo(r.Context(), img)
	if err != nil {
		h.respondServiceError(w, op, err)
		return
	}

	h.logger.Info("%s - Logo uploaded: url=%s", op, resp.URL)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleQRIS PUT /api/v1/admin/arena/qris
func (h *Handler) HandleQRIS(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /admin/arena/qris"

	img, ok := h.readImage(w, r, op)
	if !ok {
		return
	}

	resp, err := h.service.UploadQRIS(r.Context(), img)
	if err != nil {
		h.respondServiceError(w, op, err)
		return
	}

	h.logger.Info("%s - QRIS uploaded: url=%s", op, resp.URL)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleAddCarousel POST /api/v1/admin/arena/carousel
func (h *Handler) HandleAddCarousel(w http.ResponseWriter, r *http.Request) {
	const op = "POST /admin/arena/carousel"

	img, ok := h.readImage(w, r, op)
	if !ok {
		return
	}

	resp, err := h.service.AddCarouselImage(r.Context(), img)
	if err != nil {
		h.respondServiceError(w, op, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// HandleDeleteCarousel DELETE /api/v1/admin/arena/carousel/{imageId}
func (h *Handler) HandleDeleteCarousel(w http.ResponseWriter, r *http.Request) {
	const op = "DELETE /admin/arena/carousel/{id}"

	imageID, err := strconv.ParseInt(mux.Vars(r)["imageId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid image ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidImageID)
		return
	}

	if err := h.service.DeleteCarouselImage(r.Context(), imageID); err != nil {
		h.respondServiceError(w, op, err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) readImage(w http.ResponseWriter, r *http.Request, op string) (models.ImageUpload, bool) {
	if err := handlers.ParseMultipart(w, r, domain.MaxProofSizeBytes); err != nil {
		h.logger.Warn("%s - Invalid form: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return models.ImageUpload{}, false
	}

	file, err := handlers.ReadFormFile(r, fieldImage, domain.MaxProofSizeBytes)
	if err != nil {
		h.logger.Warn("%s - Invalid image: %v", op, err)
		if errors.Is(err, handlers.ErrFileTooLarge) {
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
		} else {
			handlers.RespondBadRequest(w, msgInvalidForm)
		}
		return models.ImageUpload{}, false
	}

	return models.ImageUpload{
		FileName:    file.FileName,
		ContentType: file.ContentType,
		Data:        file.Data,
	}, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, arena.ErrInvalidInput):
		h.logger.Warn("%s - Invalid image: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidImage)

	case errors.Is(err, arena.ErrImageNotFound):
		h.logger.Warn("%s - Image not found", op)
		handlers.RespondNotFound(w, msgImageNotFound)

	case errors.Is(err, arena.ErrUpload):
		h.logger.Error("%s - Upload failed: %v", op, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
