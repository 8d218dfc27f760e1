package create_reservation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/internal/infra/objectstore"
	courtRepo "github.com/m04kA/bookminton/internal/infra/storage/court"
	slotRepo "github.com/m04kA/bookminton/internal/infra/storage/slot"
	"github.com/m04kA/bookminton/pkg/ptr"
	"github.com/m04kA/bookminton/pkg/txmanager"
)

// UseCase use case создания бронирования по выбранным слотам
type UseCase struct {
	courtRepo    CourtRepository
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	arenaRepo    ArenaRepository
	files        FileStorage
	cache        AvailabilityCache
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location часовой пояс арены, в котором интерпретируется время слотов
func NewUseCase(
	courtRepo CourtRepository,
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	arenaRepo ArenaRepository,
	files FileStorage,
	cache AvailabilityCache,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:    courtRepo,
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		arenaRepo:    arenaRepo,
		files:        files,
		cache:        cache,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование
//  1. форма: данные, затем подтверждение оплаты
//  2. загрузка подтверждения в хранилище
//  3. в одной транзакции под блокировкой слотов: бронирования, токены check-in и резервирование
//
// Проигравший гонку за слот получает ErrSlotConflict
// Если после загрузки что-то пошло не так, файл остаётся в хранилище
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: court=%d, date=%s, slots=%v",
		req.CourtID, req.Date.Format(domain.DateFormat), req.SlotIDs)

	// 1. Проходим форму: данные -> подтверждение оплаты
	details, proof, err := fillForm(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.IncReservation(resultRejected)
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// 2. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, details.CourtID)
	if err != nil {
		uc.metrics.IncReservation(resultRejected)
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateReservation: court id=%d not found", details.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateReservation: failed to get court id=%d: %v", details.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrPersistence, err)
	}

	now := uc.timeProvider.Now()

	// 3. Загружаем подтверждение оплаты
	objectName := objectstore.ObjectName(domain.ObjectPrefixProof, proof.Extension(), now)
	proofURL, err := uc.files.Upload(ctx, domain.BucketPaymentProofs, objectName,
		bytes.NewReader(proof.Data), int64(len(proof.Data)), proof.ContentType)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to upload payment proof: %v", err)
		uc.metrics.IncReservation(resultFailed)
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	reservationID := uuid.New()
	var created []*domain.Booking

	// 4. Создаём бронирования и резервируем слоты в транзакции READ COMMITTED:
	// SELECT ... FOR UPDATE ждёт конкурента и читает зафиксированное состояние слота
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		slots, err := uc.slotRepo.GetByIDs(txCtx, details.SlotIDs)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				return fmt.Errorf("%w: %v", ErrSlotConflict, err)
			}
			return fmt.Errorf("%w: failed to lock slots: %v", ErrPersistence, err)
		}

		if err := domain.ValidateSelection(slots, details.SlotIDs, court.ID, details.Date); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}

		for _, s := range slots {
			if s.Reserved {
				return fmt.Errorf("%w: slot id=%d", ErrSlotConflict, s.ID)
			}
		}

		drafts := make([]*domain.Booking, 0, len(slots))
		for _, s := range slots {
			drafts = append(drafts, &domain.Booking{
				ReservationID:   reservationID,
				CourtID:         court.ID,
				SlotID:          ptr.Ptr(s.ID),
				UserID:          sessionUserID(req.Session),
				CustomerName:    details.CustomerName,
				CustomerPhone:   details.CustomerPhone,
				StartAt:         s.StartAt(uc.location),
				EndAt:           s.EndAt(uc.location),
				Status:          domain.BookingReserved,
				PaymentProofURL: proofURL,
			})
		}

		created, err = uc.bookingRepo.CreateBatch(txCtx, drafts)
		if err != nil {
			return fmt.Errorf("%w: failed to insert bookings: %v", ErrPersistence, err)
		}

		for _, b := range created {
			// токен check-in совпадает с ID бронирования
			token := b.ID.String()
			if err := uc.bookingRepo.SetCheckInToken(txCtx, b.ID, token); err != nil {
				return fmt.Errorf("%w: failed to set check-in token booking=%s: %v", ErrPersistence, b.ID, err)
			}
			b.CheckInToken = token

			if err := uc.slotRepo.Reserve(txCtx, *b.SlotID); err != nil {
				if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
					return fmt.Errorf("%w: slot id=%d", ErrSlotConflict, *b.SlotID)
				}
				return fmt.Errorf("%w: failed to reserve slot id=%d: %v", ErrPersistence, *b.SlotID, err)
			}
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotConflict), errors.Is(err, txmanager.ErrSerialization):
			uc.logger.Warn("CreateReservation: conflict court=%d: %v", court.ID, err)
			uc.metrics.IncReservation(resultConflict)
			if !errors.Is(err, ErrSlotConflict) {
				return nil, fmt.Errorf("%w: %v", ErrSlotConflict, err)
			}
			return nil, err
		case errors.Is(err, ErrValidation):
			uc.logger.Warn("CreateReservation: invalid selection court=%d: %v", court.ID, err)
			uc.metrics.IncReservation(resultRejected)
			return nil, err
		case errors.Is(err, ErrPersistence):
			uc.logger.Error("CreateReservation: transaction failed court=%d: %v", court.ID, err)
			uc.metrics.IncReservation(resultFailed)
			return nil, err
		default:
			uc.logger.Error("CreateReservation: transaction failed court=%d: %v", court.ID, err)
			uc.metrics.IncReservation(resultFailed)
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	uc.metrics.IncReservation(resultCreated)
	uc.logger.Info("CreateReservation: reservation=%s created, bookings=%d", reservationID, len(created))

	// 5. Уведомления после фиксации транзакции
	uc.afterCommit(ctx, court.ID, details, created, now)

	arena, err := uc.arenaRepo.GetProfile(ctx)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to get arena profile for receipt: %v", err)
		arena = nil
	}

	return &Response{
		Bookings: created,
		Receipt:  domain.NewReceipt(created, court, arena),
	}, nil
}

// afterCommit сбрасывает кэш доступности и рассылает события; ошибки только логируются
func (uc *UseCase) afterCommit(ctx context.Context, courtID int64, details domain.ReservationDetails, created []*domain.Booking, now time.Time) {
	if err := uc.cache.Invalidate(ctx, courtID, details.Date); err != nil {
		uc.logger.Warn("CreateReservation: failed to invalidate availability court=%d: %v", courtID, err)
	}

	for _, b := range created {
		evt := domain.NewBookingEvent(domain.EventBookingCreated, b, now)
		if err := uc.publisher.Publish(ctx, evt); err != nil {
			uc.logger.Warn("CreateReservation: failed to publish event booking=%s: %v", b.ID, err)
		}
	}
}

// fillForm проводит данные запроса через форму бронирования
func fillForm(req *Request) (domain.ReservationDetails, *domain.PaymentProof, error) {
	form := domain.NewReservationForm()

	details := domain.ReservationDetails{
		CourtID:       req.CourtID,
		Date:          req.Date,
		SlotIDs:       req.SlotIDs,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	}.FillFromSession(req.Session)

	if err := form.SubmitDetails(details); err != nil {
		return domain.ReservationDetails{}, nil, err
	}
	if err := form.AttachProof(req.Proof); err != nil {
		return domain.ReservationDetails{}, nil, err
	}

	return form.Submit()
}

func sessionUserID(s *domain.Session) *int64 {
	if s == nil {
		return nil
	}
	return ptr.Ptr(s.UserID)
}
