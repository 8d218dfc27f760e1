package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/bookminton/internal/domain"
	courtRepo "github.com/m04kA/bookminton/internal/infra/storage/court"
	slotRepo "github.com/m04kA/bookminton/internal/infra/storage/slot"
	"github.com/m04kA/bookminton/internal/service/catalog/models"
	"github.com/m04kA/bookminton/pkg/types"
)

// Service сервис каталога кортов и расписания
type Service struct {
	courtRepo CourtRepository
	slotRepo  SlotRepository
	cache     AvailabilityCache
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	courtRepo CourtRepository,
	slotRepo SlotRepository,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		courtRepo: courtRepo,
		slotRepo:  slotRepo,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
	}
}

// ListCourts получает корты, упорядоченные по ID
func (s *Service) ListCourts(ctx context.Context) (*models.CourtListResponse, error) {
	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCourts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourtList(courts), nil
}

// CreateCourt создает корт
func (s *Service) CreateCourt(ctx context.Context, req *models.CourtRequest) (*models.CourtResponse, error) {
	court, err := toDomainCourt(req)
	if err != nil {
		s.logger.Warn("CreateCourt: validation failed: %v", err)
		return nil, err
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("CreateCourt: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCourt: created court id=%d name=%s", created.ID, created.Name)
	return models.FromDomainCourt(created), nil
}

// UpdateCourt изменяет название и цену корта
func (s *Service) UpdateCourt(ctx context.Context, id int64, req *models.CourtRequest) (*models.CourtResponse, error) {
	court, err := toDomainCourt(req)
	if err != nil {
		s.logger.Warn("UpdateCourt: validation failed for court id=%d: %v", id, err)
		return nil, err
	}
	court.ID = id

	if err := s.courtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("UpdateCourt: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("UpdateCourt: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCourt - repository error: %v", ErrInternal, err)
	}

	updated, err := s.getCourt(ctx, "UpdateCourt", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateCourt: updated court id=%d price=%d", id, updated.Price)
	return models.FromDomainCourt(updated), nil
}

// DeleteCourt удаляет корт
// Корт, на который ссылаются бронирования, удалить нельзя
func (s *Service) DeleteCourt(ctx context.Context, id int64) error {
	if err := s.courtRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, courtRepo.ErrCourtNotFound):
			s.logger.Warn("DeleteCourt: court id=%d not found", id)
			return ErrCourtNotFound
		case errors.Is(err, courtRepo.ErrCourtInUse):
			s.logger.Warn("DeleteCourt: court id=%d has bookings", id)
			return ErrCourtInUse
		}
		s.logger.Error("DeleteCourt: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCourt: deleted court id=%d", id)
	return nil
}

// ListSlots получает слоты корта на дату, упорядоченные по времени начала
func (s *Service) ListSlots(ctx context.Context, courtID int64, date string) (*models.SlotListResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		s.logger.Warn("ListSlots: %v", err)
		return nil, err
	}

	slots, err := s.slotRepo.GetByCourtAndDate(ctx, courtID, day)
	if err != nil {
		s.logger.Error("ListSlots: repository error for court=%d date=%s: %v", courtID, date, err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// CreateSlot создает слот, если он не пересекается с существующими слотами корта на эту дату
func (s *Service) CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	candidate, err := toDomainSlot(req)
	if err != nil {
		s.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.getCourt(ctx, "CreateSlot", candidate.CourtID); err != nil {
		return nil, err
	}

	var created *domain.Slot
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.slotRepo.GetByCourtAndDate(txCtx, candidate.CourtID, candidate.Date)
		if err != nil {
			return err
		}

		if clash := domain.FindOverlap(candidate, existing); clash != nil {
			return fmt.Errorf("%w: %s-%s clashes with slot id=%d %s-%s", ErrSlotOverlap,
				candidate.StartTime, candidate.EndTime, clash.ID, clash.StartTime, clash.EndTime)
		}

		created, err = s.slotRepo.Create(txCtx, candidate)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrSlotOverlap) {
			s.logger.Warn("CreateSlot: %v", err)
			return nil, err
		}
		s.logger.Error("CreateSlot: transaction failed for court=%d: %v", candidate.CourtID, err)
		return nil, fmt.Errorf("%w: CreateSlot - transaction: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "CreateSlot", created)
	s.logger.Info("CreateSlot: created slot id=%d court=%d %s %s-%s", created.ID, created.CourtID,
		created.Date.Format(domain.DateFormat), created.StartTime, created.EndTime)
	return models.FromDomainSlot(created), nil
}

// DeleteSlot удаляет слот, если он не зарезервирован
func (s *Service) DeleteSlot(ctx context.Context, id int64) error {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("DeleteSlot: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteSlot - get slot: %v", ErrInternal, err)
	}

	if slot.Reserved {
		s.logger.Warn("DeleteSlot: slot id=%d is reserved", id)
		return ErrSlotReserved
	}

	if err := s.slotRepo.DeleteUnreserved(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
			s.logger.Warn("DeleteSlot: slot id=%d was reserved concurrently", id)
			return ErrSlotReserved
		}
		s.logger.Error("DeleteSlot: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteSlot - delete: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "DeleteSlot", slot)
	s.logger.Info("DeleteSlot: deleted slot id=%d", id)
	return nil
}

func (s *Service) getCourt(ctx context.Context, op string, id int64) (*domain.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("%s: court id=%d not found", op, id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("%s: failed to get court id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - get court: %v", ErrInternal, op, err)
	}
	return court, nil
}

func (s *Service) invalidate(ctx context.Context, op string, slot *domain.Slot) {
	if err := s.cache.Invalidate(ctx, slot.CourtID, slot.Date); err != nil {
		s.logger.Warn("%s: failed to invalidate availability court=%d: %v", op, slot.CourtID, err)
	}
}

func toDomainCourt(req *models.CourtRequest) (*domain.Court, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCourtNameLength {
		return nil, fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxCourtNameLength)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	return &domain.Court{Name: name, Price: req.Price}, nil
}

func toDomainSlot(req *models.CreateSlotRequest) (*domain.Slot, error) {
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtId is required", ErrInvalidInput)
	}

	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	slot := &domain.Slot{CourtID: req.CourtID, Date: day, StartTime: start, EndTime: end}
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return slot, nil
}

func parseDate(date string) (time.Time, error) {
	day, err := time.Parse(domain.DateFormat, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return day, nil
}
