package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/pkg/dbmetrics"
	"github.com/m04kA/bookminton/pkg/psqlbuilder"
)

const table = "bookings"

var columnNames = []string{
	"id",
	"reservation_id",
	"court_id",
	"schedule_id",
	"user_id",
	"user_name",
	"user_phone",
	"start_time",
	"end_time",
	"status",
	"payment_proof_url",
	"qr_code_string",
	"created_at",
}

// columns возвращает колонки бронирования с префиксом таблицы (для JOIN)
func columns(prefix string) []string {
	if prefix == "" {
		return columnNames
	}
	result := make([]string, len(columnNames))
	for i, c := range columnNames {
		result[i] = prefix + "." + c
	}
	return result
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает пачку бронирований одним INSERT
// Идентификаторы генерирует БД; возвращённые строки сопоставляются с черновиками по schedule_id
func (r *Repository) CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(table).
		Columns(
			"reservation_id",
			"court_id",
			"schedule_id",
			"user_id",
			"user_name",
			"user_phone",
			"start_time",
			"end_time",
			"status",
			"payment_proof_url",
			"qr_code_string",
		)

	for _, b := range bookings {
		builder = builder.Values(
			b.ReservationID,
			b.CourtID,
			b.SlotID,
			b.UserID,
			b.CustomerName,
			b.CustomerPhone,
			b.StartAt,
			b.EndAt,
			b.Status,
			b.PaymentProofURL,
			b.CheckInToken,
		)
	}

	query, args, err := builder.Suffix("RETURNING id, schedule_id, created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bySlot := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		if b.SlotID != nil {
			bySlot[*b.SlotID] = b
		}
	}

	i := 0
	for rows.Next() {
		if i >= len(bookings) {
			return nil, fmt.Errorf("%w: CreateBatch - got more rows than inserted", ErrBatchMismatch)
		}

		var (
			id        uuid.UUID
			slotID    sql.NullInt64
			createdAt sql.NullTime
		)
		if err := rows.Scan(&id, &slotID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan returning: %v", ErrScanRow, err)
		}

		target := bookings[i]
		if slotID.Valid {
			if b, ok := bySlot[slotID.Int64]; ok {
				target = b
			}
		}
		target.ID = id
		target.CreatedAt = createdAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}
	if i != len(bookings) {
		return nil, fmt.Errorf("%w: CreateBatch - inserted %d of %d", ErrBatchMismatch, i, len(bookings))
	}

	return bookings, nil
}

// SetCheckInToken записывает токен check-in
func (r *Repository) SetCheckInToken(ctx context.Context, id uuid.UUID, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("qr_code_string", token).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCheckInToken - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCheckInToken - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCheckInToken - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CheckIn переводит бронирование с указанным токеном из reserved в in_progress
// Условное обновление: если токен не найден или статус другой, возвращает ErrBookingNotFound
func (r *Repository) CheckIn(ctx context.Context, token string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.BookingInProgress).
		Where(squirrel.Eq{"qr_code_string": token}).
		Where(squirrel.Eq{"status": domain.BookingReserved}).
		Suffix("RETURNING " + joinColumns(columns(""))).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CheckIn - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CheckIn - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns("")...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByReservationID получает бронирования одной заявки, упорядоченные по времени начала
func (r *Repository) GetByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns("")...).
		From(table).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetBySlotIDs получает бронирования, связанные с указанными слотами
func (r *Repository) GetBySlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error) {
	if len(slotIDs) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns("")...).
		From(table).
		Where(squirrel.Eq{"schedule_id": slotIDs}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListWithCourts получает все бронирования с названиями кортов, упорядоченные по времени начала
func (r *Repository) ListWithCourts(ctx context.Context) ([]*domain.BookingWithCourt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append(columns("b"), "c.name")...).
		From(table + " b").
		Join("courts c ON c.id = b.court_id").
		OrderBy("b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithCourts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithCourts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookingsWithCourts(rows)
}

// ListByUserWithCourts получает бронирования пользователя, сначала новые
func (r *Repository) ListByUserWithCourts(ctx context.Context, userID int64) ([]*domain.BookingWithCourt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append(columns("b"), "c.name")...).
		From(table + " b").
		Join("courts c ON c.id = b.court_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserWithCourts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserWithCourts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookingsWithCourts(rows)
}

// Delete удаляет бронирование и возвращает удалённую запись (SlotID nil, если ссылки на слот нет)
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(columns(""))).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanInto(s scanner, b *domain.Booking, extra ...interface{}) error {
	var createdAt sql.NullTime
	dest := []interface{}{
		&b.ID,
		&b.ReservationID,
		&b.CourtID,
		&b.SlotID,
		&b.UserID,
		&b.CustomerName,
		&b.CustomerPhone,
		&b.StartAt,
		&b.EndAt,
		&b.Status,
		&b.PaymentProofURL,
		&b.CheckInToken,
		&createdAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	b.CreatedAt = createdAt.Time
	return nil
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := scanInto(row, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		if err := scanInto(rows, &b); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func scanBookingsWithCourts(rows *sql.Rows) ([]*domain.BookingWithCourt, error) {
	result := make([]*domain.BookingWithCourt, 0)

	for rows.Next() {
		var b domain.BookingWithCourt
		if err := scanInto(rows, &b.Booking, &b.CourtName); err != nil {
			return nil, fmt.Errorf("%w: scanBookingsWithCourts - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookingsWithCourts - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
