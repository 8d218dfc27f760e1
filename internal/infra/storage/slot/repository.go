package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/pkg/dbmetrics"
	"github.com/m04kA/bookminton/pkg/psqlbuilder"
	"github.com/m04kA/bookminton/pkg/txmanager"
)

const table = "court_schedules"

var columns = []string{"id", "court_id", "date", "start_time", "end_time", "is_booked"}

// Repository репозиторий расписания кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCourtAndDate получает слоты корта на дату, упорядоченные по времени начала
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByIDs получает слоты по списку ID, упорядоченные по времени начала
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Slot, error) {
	if len(ids) == 0 {
		return []*domain.Slot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: GetByIDs - %v", ErrSlotNotAvailable, err)
		}
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.CourtID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.Reserved,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Create создает слот
func (r *Repository) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("court_id", "date", "start_time", "end_time", "is_booked").
		Values(s.CourtID, s.Date.Format(domain.DateFormat), s.StartTime, s.EndTime, false).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	s.Reserved = false

	return s, nil
}

// DeleteUnreserved удаляет слот, только если он не зарезервирован
func (r *Repository) DeleteUnreserved(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_booked": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteUnreserved - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DeleteUnreserved", ErrSlotNotAvailable)
}

// Reserve помечает слот зарезервированным, только если он свободен
// Если слот уже занят (или не существует), возвращает ErrSlotNotAvailable
func (r *Repository) Reserve(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_booked", true).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_booked": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Reserve", ErrSlotNotAvailable)
}

// Release освобождает слот
func (r *Repository) Release(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_booked", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Release", ErrSlotNotFound)
}

// ListOrphanReserved получает зарезервированные слоты без бронирований
func (r *Repository) ListOrphanReserved(ctx context.Context) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(prefixed("s")...).
		From(table + " s").
		Where(squirrel.Eq{"s.is_booked": true}).
		Where("NOT EXISTS (SELECT 1 FROM bookings b WHERE b.schedule_id = s.id)").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOrphanReserved - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOrphanReserved - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// ListUnreservedWithBooking получает свободные слоты, на которые ссылается бронирование
func (r *Repository) ListUnreservedWithBooking(ctx context.Context) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(prefixed("s")...).
		From(table + " s").
		Where(squirrel.Eq{"s.is_booked": false}).
		Where("EXISTS (SELECT 1 FROM bookings b WHERE b.schedule_id = s.id)").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUnreservedWithBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUnreservedWithBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

const hasBookingCondition = "EXISTS (SELECT 1 FROM bookings b WHERE b.schedule_id = " + table + ".id)"

// SetReserved массово выставляет флаг резервирования, возвращает число изменённых строк
//
// Флаг меняется только там, где он расходится с таблицей бронирований на момент UPDATE:
// резервируются слоты с бронированием, освобождаются слоты без него.
// Отмена или новая бронь, закоммиченная после выборки кандидатов, не приводит к рассогласованию.
func (r *Repository) SetReserved(ctx context.Context, ids []int64, reserved bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	bookingGuard := "NOT " + hasBookingCondition
	if reserved {
		bookingGuard = hasBookingCondition
	}

	query, args, err := psqlbuilder.Update(table).
		Set("is_booked", reserved).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.NotEq{"is_booked": reserved}).
		Where(bookingGuard).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SetReserved - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: SetReserved - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: SetReserved - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) execExpectingRow(
	ctx context.Context,
	executor DBExecutor,
	query string,
	args []interface{},
	op string,
	noRowsErr error,
) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			return fmt.Errorf("%w: %s - %v", ErrSlotNotAvailable, op, err)
		}
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return noRowsErr
	}

	return nil
}

func prefixed(prefix string) []string {
	result := make([]string, len(columns))
	for i, c := range columns {
		result[i] = prefix + "." + c
	}
	return result
}

// scanSlots сканирует результаты запроса в слайс слотов
func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.CourtID, &s.Date, &s.StartTime, &s.EndTime, &s.Reserved); err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
