package arena

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/pkg/dbmetrics"
	"github.com/m04kA/bookminton/pkg/psqlbuilder"
)

const (
	settingsTable = "arena_settings"
	carouselTable = "carousel_images"

	// settingsRowID единственная строка настроек арены
	settingsRowID = 1
)

// Repository репозиторий профиля арены и галереи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория арены
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetProfile получает профиль арены
// Если профиль ещё не заполнен, возвращает пустой профиль
func (r *Repository) GetProfile(ctx context.Context) (*domain.ArenaProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("name", "address", "logo_url", "bank_info", "qris_url", "updated_at").
		From(settingsTable).
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetProfile - build select query: %v", ErrBuildQuery, err)
	}

	var (
		p         domain.ArenaProfile
		updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.Name,
		&p.Address,
		&p.LogoURL,
		&p.BankInfo,
		&p.QRISURL,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return &domain.ArenaProfile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfile - scan profile: %v", ErrScanRow, err)
	}

	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// UpsertProfile сохраняет текстовые поля профиля (название, адрес, реквизиты)
func (r *Repository) UpsertProfile(ctx context.Context, p *domain.ArenaProfile) (*domain.ArenaProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(settingsTable).
		Columns("id", "name", "address", "bank_info").
		Values(settingsRowID, p.Name, p.Address, p.BankInfo).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			bank_info = EXCLUDED.bank_info,
			updated_at = NOW()
		RETURNING logo_url, qris_url, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertProfile - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.LogoURL, &p.QRISURL, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertProfile - execute upsert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// SetLogoURL сохраняет ссылку на логотип
func (r *Repository) SetLogoURL(ctx context.Context, url string) error {
	return r.setURL(ctx, "SetLogoURL", "logo_url", url)
}

// SetQRISURL сохраняет ссылку на QRIS изображение
func (r *Repository) SetQRISURL(ctx context.Context, url string) error {
	return r.setURL(ctx, "SetQRISURL", "qris_url", url)
}

func (r *Repository) setURL(ctx context.Context, op, column, url string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(settingsTable).
		Columns("id", column).
		Values(settingsRowID, url).
		Suffix(fmt.Sprintf("ON CONFLICT (id) DO UPDATE SET %s = EXCLUDED.%s, updated_at = NOW()", column, column)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build upsert query: %v", ErrBuildQuery, op, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s - execute upsert: %v", ErrExecQuery, op, err)
	}

	return nil
}

// ListCarousel получает изображения галереи, новые первыми
func (r *Repository) ListCarousel(ctx context.Context) ([]*domain.CarouselImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "image_url", "created_at").
		From(carouselTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCarousel - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCarousel - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]*domain.CarouselImage, 0)
	for rows.Next() {
		var img domain.CarouselImage
		if err := rows.Scan(&img.ID, &img.ImageURL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListCarousel - scan row: %v", ErrScanRow, err)
		}
		images = append(images, &img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCarousel - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}

// AddCarouselImage добавляет изображение в галерею
func (r *Repository) AddCarouselImage(ctx context.Context, url string) (*domain.CarouselImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(carouselTable).
		Columns("image_url").
		Values(url).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddCarouselImage - build insert query: %v", ErrBuildQuery, err)
	}

	img := &domain.CarouselImage{ImageURL: url}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&img.ID, &img.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: AddCarouselImage - execute insert: %v", ErrExecQuery, err)
	}

	return img, nil
}

// DeleteCarouselImage удаляет изображение галереи
func (r *Repository) DeleteCarouselImage(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(carouselTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteCarouselImage - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteCarouselImage - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteCarouselImage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrImageNotFound
	}

	return nil
}
