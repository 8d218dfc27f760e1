package court

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/bookminton/internal/domain"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, price, created_at FROM courts ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "created_at"}).
			AddRow(int64(1), "Court A", int64(50000), now).
			AddRow(int64(2), "Court B", int64(60000), now))

	courts, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, courts, 2)
	assert.Equal(t, "Court B", courts[1].Name)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO courts (name,price) VALUES ($1,$2) RETURNING id, created_at")).
		WithArgs("Court A", int64(50000)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), time.Now()))

	created, err := repo.Create(context.Background(), &domain.Court{Name: "Court A", Price: 50000})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestRepository_Delete_InUse(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM courts").
		WillReturnError(&pq.Error{Code: pqForeignKeyViolation})

	assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrCourtInUse)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("UPDATE courts SET name").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Court{ID: 9, Name: "X", Price: 1})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}
