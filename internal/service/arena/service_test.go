package arena

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/bookminton/internal/domain"
	arenaRepo "github.com/m04kA/bookminton/internal/infra/storage/arena"
	"github.com/m04kA/bookminton/internal/service/arena/models"
	"github.com/m04kA/bookminton/pkg/logger"
	"github.com/m04kA/bookminton/pkg/ptr"
)

type mockArenaRepository struct {
	mock.Mock
}

func (m *mockArenaRepository) GetProfile(ctx context.Context) (*domain.ArenaProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArenaProfile), args.Error(1)
}

func (m *mockArenaRepository) UpsertProfile(ctx context.Context, p *domain.ArenaProfile) (*domain.ArenaProfile, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArenaProfile), args.Error(1)
}

func (m *mockArenaRepository) SetLogoURL(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *mockArenaRepository) SetQRISURL(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *mockArenaRepository) ListCarousel(ctx context.Context) ([]*domain.CarouselImage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CarouselImage), args.Error(1)
}

func (m *mockArenaRepository) AddCarouselImage(ctx context.Context, url string) (*domain.CarouselImage, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarouselImage), args.Error(1)
}

func (m *mockArenaRepository) DeleteCarouselImage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) Upload(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, bucket, name, r, size, contentType)
	return args.String(0), args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var testNow = time.Date(2025, 5, 30, 10, 0, 0, 0, time.UTC)

func newTestService() (*Service, *mockArenaRepository, *mockFileStorage) {
	repo := &mockArenaRepository{}
	files := &mockFileStorage{}
	svc := NewService(repo, files, logger.NewNop())
	svc.timeProvider = fixedTime{now: testNow}
	return svc, repo, files
}

func pngUpload() models.ImageUpload {
	return models.ImageUpload{FileName: "logo.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
}

func TestService_Get(t *testing.T) {
	svc, repo, _ := newTestService()

	repo.On("GetProfile", mock.Anything).Return(&domain.ArenaProfile{Name: "Bookminton", BankInfo: "BCA 123"}, nil)
	repo.On("ListCarousel", mock.Anything).Return([]*domain.CarouselImage{
		{ID: 2, ImageURL: "http://files/arena-assets/carousel_2.jpg"},
	}, nil)

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bookminton", resp.Name)
	assert.Nil(t, resp.UpdatedAt)
	require.Len(t, resp.Carousel, 1)
	assert.Equal(t, int64(2), resp.Carousel[0].ID)
}

func TestService_UpdateProfile_PartialUpdate(t *testing.T) {
	svc, repo, _ := newTestService()

	repo.On("GetProfile", mock.Anything).
		Return(&domain.ArenaProfile{Name: "Old", Address: "Jl. Merdeka 1", BankInfo: "BCA 123"}, nil)
	repo.On("UpsertProfile", mock.Anything, mock.MatchedBy(func(p *domain.ArenaProfile) bool {
		return p.Name == "Bookminton" && p.Address == "Jl. Merdeka 1" && p.BankInfo == "BCA 123"
	})).Return(&domain.ArenaProfile{Name: "Bookminton"}, nil)
	repo.On("ListCarousel", mock.Anything).Return([]*domain.CarouselImage{}, nil)

	_, err := svc.UpdateProfile(context.Background(), &models.UpdateProfileRequest{Name: ptr.Ptr("  Bookminton ")})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_UpdateProfile_EmptyName(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.UpdateProfile(context.Background(), &models.UpdateProfileRequest{Name: ptr.Ptr("   ")})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything)
}

func TestService_UploadLogo(t *testing.T) {
	svc, repo, files := newTestService()
	url := "http://files/arena-assets/logo_1748599200000.png"

	files.On("Upload", mock.Anything, domain.BucketArenaAssets, "logo_1748599200000.png",
		mock.Anything, int64(4), "image/png").Return(url, nil)
	repo.On("SetLogoURL", mock.Anything, url).Return(nil)

	resp, err := svc.UploadLogo(context.Background(), pngUpload())

	require.NoError(t, err)
	assert.Equal(t, url, resp.URL)
}

func TestService_UploadQRIS_UnsupportedType(t *testing.T) {
	svc, _, files := newTestService()
	img := pngUpload()
	img.ContentType = "application/pdf"

	_, err := svc.UploadQRIS(context.Background(), img)

	assert.ErrorIs(t, err, ErrInvalidInput)
	files.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UploadQRIS_UploadFails(t *testing.T) {
	svc, repo, files := newTestService()

	files.On("Upload", mock.Anything, domain.BucketArenaAssets, "qris_1748599200000.png",
		mock.Anything, int64(4), "image/png").Return("", errors.New("bucket unavailable"))

	_, err := svc.UploadQRIS(context.Background(), pngUpload())

	assert.ErrorIs(t, err, ErrUpload)
	repo.AssertNotCalled(t, "SetQRISURL", mock.Anything, mock.Anything)
}

func TestService_AddCarouselImage(t *testing.T) {
	svc, repo, files := newTestService()
	url := "http://files/arena-assets/carousel_1748599200000.png"

	files.On("Upload", mock.Anything, domain.BucketArenaAssets, "carousel_1748599200000.png",
		mock.Anything, int64(4), "image/png").Return(url, nil)
	repo.On("AddCarouselImage", mock.Anything, url).Return(&domain.CarouselImage{ID: 5, ImageURL: url}, nil)

	resp, err := svc.AddCarouselImage(context.Background(), pngUpload())

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
}

func TestService_DeleteCarouselImage_NotFound(t *testing.T) {
	svc, repo, _ := newTestService()

	repo.On("DeleteCarouselImage", mock.Anything, int64(9)).Return(arenaRepo.ErrImageNotFound)

	err := svc.DeleteCarouselImage(context.Background(), 9)

	assert.ErrorIs(t, err, ErrImageNotFound)
}
