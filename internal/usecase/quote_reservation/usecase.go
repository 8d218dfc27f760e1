package quote_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/bookminton/internal/domain"
	courtRepo "github.com/m04kA/bookminton/internal/infra/storage/court"
)

// UseCase use case расчёта стоимости бронирования (шаг ввода данных формы)
// Не изменяет состояние
type UseCase struct {
	courtRepo CourtRepository
	slotRepo  SlotRepository
	arenaRepo ArenaRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(courtRepo CourtRepository, slotRepo SlotRepository, arenaRepo ArenaRepository, logger Logger) *UseCase {
	return &UseCase{
		courtRepo: courtRepo,
		slotRepo:  slotRepo,
		arenaRepo: arenaRepo,
		logger:    logger,
	}
}

// Execute валидирует данные формы и считает итог по выбранным слотам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	form := domain.NewReservationForm()
	details := domain.ReservationDetails{
		CourtID:       req.CourtID,
		Date:          req.Date,
		SlotIDs:       req.SlotIDs,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	}.FillFromSession(req.Session)

	if err := form.SubmitDetails(details); err != nil {
		uc.logger.Warn("QuoteReservation: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	details = form.Details()

	court, err := uc.courtRepo.GetByID(ctx, details.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("QuoteReservation: court id=%d not found", details.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("QuoteReservation: failed to get court id=%d: %v", details.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	slots, err := uc.slotRepo.GetByIDs(ctx, details.SlotIDs)
	if err != nil {
		uc.logger.Error("QuoteReservation: failed to get slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	if err := domain.ValidateSelection(slots, details.SlotIDs, court.ID, details.Date); err != nil {
		uc.logger.Warn("QuoteReservation: invalid selection: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, s := range slots {
		if s.Reserved {
			uc.logger.Warn("QuoteReservation: slot id=%d already reserved", s.ID)
			return nil, fmt.Errorf("%w: slot id=%d", ErrSlotNotAvailable, s.ID)
		}
	}

	arena, err := uc.arenaRepo.GetProfile(ctx)
	if err != nil {
		uc.logger.Error("QuoteReservation: failed to get arena profile: %v", err)
		return nil, fmt.Errorf("%w: failed to get arena profile: %v", ErrInternal, err)
	}

	quote := domain.CalculateQuote(slots, court.Price)

	resp := &Response{
		Step:          form.Step(),
		CourtID:       court.ID,
		CourtName:     court.Name,
		HourlyPrice:   court.Price,
		Date:          details.Date,
		CustomerName:  details.CustomerName,
		CustomerPhone: details.CustomerPhone,
		Sessions:      make([]SessionQuote, 0, len(slots)),
		TotalHours:    quote.TotalHours,
		TotalPrice:    quote.TotalPrice,
		Payment:       arena.PaymentInstructions(),
	}
	for _, s := range slots {
		resp.Sessions = append(resp.Sessions, SessionQuote{
			SlotID:        s.ID,
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			DurationHours: s.DurationHours(),
		})
	}

	uc.logger.Info("QuoteReservation: court=%d, slots=%d, total=%.0f", court.ID, len(slots), quote.TotalPrice)

	return resp, nil
}
