package arena_images

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/bookminton/internal/service/arena"
	"github.com/m04kA/bookminton/internal/service/arena/models"
	"github.com/m04kA/bookminton/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UploadLogo(ctx context.Context, img models.ImageUpload) (*models.ImageURLResponse, error) {
	args := m.Called(ctx, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ImageURLResponse), args.Error(1)
}

func (m *mockService) UploadQRIS(ctx context.Context, img models.ImageUpload) (*models.ImageURLResponse, error) {
	args := m.Called(ctx, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ImageURLResponse), args.Error(1)
}

func (m *mockService) AddCarouselImage(ctx context.Context, img models.ImageUpload) (*models.CarouselImageResponse, error) {
	args := m.Called(ctx, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CarouselImageResponse), args.Error(1)
}

func (m *mockService) DeleteCarouselImage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var jpegImage = []byte("\xff\xd8\xff\xe0jpeg-bytes")

func router(svc *mockService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/arena/logo", h.HandleLogo).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/admin/arena/qris", h.HandleQRIS).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/admin/arena/carousel", h.HandleAddCarousel).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/admin/arena/carousel/{imageId}", h.HandleDeleteCarousel).Methods(http.MethodDelete)
	return r
}

func imageRequest(t *testing.T, method, target string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if data != nil {
		part, err := mw.CreateFormFile("image", "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func do(r *mux.Router, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_HandleLogo(t *testing.T) {
	svc := &mockService{}
	svc.On("UploadLogo", mock.Anything, models.ImageUpload{FileName: "photo.jpg", ContentType: "image/jpeg", Data: jpegImage}).
		Return(&models.ImageURLResponse{URL: "http://files/logo.jpg"}, nil)

	rec := do(router(svc), imageRequest(t, http.MethodPut, "/api/v1/admin/arena/logo", jpegImage))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"http://files/logo.jpg"}`, rec.Body.String())
}

func TestHandler_HandleQRIS_UploadFailed(t *testing.T) {
	svc := &mockService{}
	svc.On("UploadQRIS", mock.Anything, mock.Anything).Return(nil, arena.ErrUpload)

	rec := do(router(svc), imageRequest(t, http.MethodPut, "/api/v1/admin/arena/qris", jpegImage))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandler_HandleAddCarousel(t *testing.T) {
	svc := &mockService{}
	svc.On("AddCarouselImage", mock.Anything, mock.Anything).Return(&models.CarouselImageResponse{ID: 4, ImageURL: "http://files/c.jpg"}, nil)

	rec := do(router(svc), imageRequest(t, http.MethodPost, "/api/v1/admin/arena/carousel", jpegImage))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":4`)
}

func TestHandler_HandleAddCarousel_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		svc := &mockService{}
		rec := do(router(svc), imageRequest(t, http.MethodPost, "/api/v1/admin/arena/carousel", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "AddCarouselImage", mock.Anything, mock.Anything)
	})

	t.Run("rejected type", func(t *testing.T) {
		svc := &mockService{}
		svc.On("AddCarouselImage", mock.Anything, mock.Anything).Return(nil, arena.ErrInvalidInput)
		rec := do(router(svc), imageRequest(t, http.MethodPost, "/api/v1/admin/arena/carousel", []byte("plain text")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_HandleDeleteCarousel(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		call       bool
		wantStatus int
	}{
		{name: "deleted", target: "4", call: true, wantStatus: http.StatusNoContent},
		{name: "not found", target: "4", call: true, err: arena.ErrImageNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid id", target: "four", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.call {
				svc.On("DeleteCarouselImage", mock.Anything, int64(4)).Return(tt.err)
			}

			rec := do(router(svc), httptest.NewRequest(http.MethodDelete, "/api/v1/admin/arena/carousel/"+tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
