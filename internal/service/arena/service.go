package arena

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/internal/infra/objectstore"
	arenaRepo "github.com/m04kA/bookminton/internal/infra/storage/arena"
	"github.com/m04kA/bookminton/internal/service/arena/models"
)

const (
	maxNameLength    = 100
	maxAddressLength = 255
)

// Service сервис профиля арены: брендинг, реквизиты оплаты и галерея
type Service struct {
	arenaRepo    ArenaRepository
	files        FileStorage
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса арены
func NewService(
	arenaRepo ArenaRepository,
	files FileStorage,
	logger Logger,
) *Service {
	return &Service{
		arenaRepo:    arenaRepo,
		files:        files,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get получает профиль арены и галерею
func (s *Service) Get(ctx context.Context) (*models.ArenaResponse, error) {
	profile, err := s.arenaRepo.GetProfile(ctx)
	if err != nil {
		s.logger.Error("Get: failed to get profile: %v", err)
		return nil, fmt.Errorf("%w: Get - get profile: %v", ErrInternal, err)
	}

	carousel, err := s.arenaRepo.ListCarousel(ctx)
	if err != nil {
		s.logger.Error("Get: failed to list carousel: %v", err)
		return nil, fmt.Errorf("%w: Get - list carousel: %v", ErrInternal, err)
	}

	return models.FromDomainArena(profile, carousel), nil
}

// UpdateProfile обновляет переданные поля профиля
func (s *Service) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.ArenaResponse, error) {
	if err := validateProfile(req); err != nil {
		s.logger.Warn("UpdateProfile: validation failed: %v", err)
		return nil, err
	}

	profile, err := s.arenaRepo.GetProfile(ctx)
	if err != nil {
		s.logger.Error("UpdateProfile: failed to get profile: %v", err)
		return nil, fmt.Errorf("%w: UpdateProfile - get profile: %v", ErrInternal, err)
	}

	req.ApplyTo(profile)

	updated, err := s.arenaRepo.UpsertProfile(ctx, profile)
	if err != nil {
		s.logger.Error("UpdateProfile: failed to save profile: %v", err)
		return nil, fmt.Errorf("%w: UpdateProfile - upsert: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: profile updated, name=%s", updated.Name)
	return s.Get(ctx)
}

// UploadLogo загружает логотип и сохраняет его адрес в профиле
func (s *Service) UploadLogo(ctx context.Context, img models.ImageUpload) (*models.ImageURLResponse, error) {
	url, err := s.upload(ctx, "UploadLogo", domain.ObjectPrefixLogo, img)
	if err != nil {
		return nil, err
	}

	if err := s.arenaRepo.SetLogoURL(ctx, url); err != nil {
		s.logger.Error("UploadLogo: failed to save url: %v", err)
		return nil, fmt.Errorf("%w: UploadLogo - save url: %v", ErrInternal, err)
	}

	return &models.ImageURLResponse{URL: url}, nil
}

// UploadQRIS загружает QRIS код оплаты и сохраняет его адрес в профиле
func (s *Service) UploadQRIS(ctx context.Context, img models.ImageUpload) (*models.ImageURLResponse, error) {
	url, err := s.upload(ctx, "UploadQRIS", domain.ObjectPrefixQRIS, img)
	if err != nil {
		return nil, err
	}

	if err := s.arenaRepo.SetQRISURL(ctx, url); err != nil {
		s.logger.Error("UploadQRIS: failed to save url: %v", err)
		return nil, fmt.Errorf("%w: UploadQRIS - save url: %v", ErrInternal, err)
	}

	return &models.ImageURLResponse{URL: url}, nil
}

// AddCarouselImage загружает изображение и добавляет его в галерею
func (s *Service) AddCarouselImage(ctx context.Context, img models.ImageUpload) (*models.CarouselImageResponse, error) {
	url, err := s.upload(ctx, "AddCarouselImage", domain.ObjectPrefixCarousel, img)
	if err != nil {
		return nil, err
	}

	created, err := s.arenaRepo.AddCarouselImage(ctx, url)
	if err != nil {
		s.logger.Error("AddCarouselImage: failed to insert image: %v", err)
		return nil, fmt.Errorf("%w: AddCarouselImage - insert: %v", ErrInternal, err)
	}

	s.logger.Info("AddCarouselImage: image id=%d added", created.ID)
	return models.FromDomainCarouselImage(created), nil
}

// DeleteCarouselImage удаляет изображение из галереи
// Файл в хранилище не удаляется
func (s *Service) DeleteCarouselImage(ctx context.Context, id int64) error {
	if err := s.arenaRepo.DeleteCarouselImage(ctx, id); err != nil {
		if errors.Is(err, arenaRepo.ErrImageNotFound) {
			s.logger.Warn("DeleteCarouselImage: image id=%d not found", id)
			return ErrImageNotFound
		}
		s.logger.Error("DeleteCarouselImage: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteCarouselImage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCarouselImage: image id=%d deleted", id)
	return nil
}

func (s *Service) upload(ctx context.Context, op, prefix string, img models.ImageUpload) (string, error) {
	ext, err := validateImage(img)
	if err != nil {
		s.logger.Warn("%s: invalid image %q: %v", op, img.FileName, err)
		return "", err
	}

	name := objectstore.ObjectName(prefix, ext, s.timeProvider.Now())
	url, err := s.files.Upload(ctx, domain.BucketArenaAssets, name,
		bytes.NewReader(img.Data), int64(len(img.Data)), img.ContentType)
	if err != nil {
		s.logger.Error("%s: failed to upload %s: %v", op, name, err)
		return "", fmt.Errorf("%w: %s - upload: %v", ErrUpload, op, err)
	}

	s.logger.Info("%s: uploaded %s", op, name)
	return url, nil
}

func validateImage(img models.ImageUpload) (string, error) {
	if len(img.Data) == 0 {
		return "", fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if len(img.Data) > domain.MaxProofSizeBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, domain.MaxProofSizeBytes)
	}
	ext, ok := domain.AllowedImageContentTypes[img.ContentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidInput, img.ContentType)
	}
	return ext, nil
}

func validateProfile(req *models.UpdateProfileRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(name) > maxNameLength {
			return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, maxNameLength)
		}
		req.Name = &name
	}
	if req.Address != nil && len(*req.Address) > maxAddressLength {
		return fmt.Errorf("%w: address must not exceed %d characters", ErrInvalidInput, maxAddressLength)
	}
	return nil
}
