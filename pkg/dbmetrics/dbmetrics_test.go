package dbmetrics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	operations []string
}

func (c *recordingCollector) ObserveDBQuery(operation string, _ time.Duration, _ error) {
	c.operations = append(c.operations, operation)
}

func (c *recordingCollector) SetDBPoolStats(sql.DBStats) {}

func TestDB_ObservesOperations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &recordingCollector{}
	wrapped := Wrap(db, collector)

	mock.ExpectExec("DELETE FROM bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM courts").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM bookings WHERE id = $1", "x")
	require.NoError(t, err)
	rows, err := wrapped.QueryContext(context.Background(), "\n\t\tSELECT id FROM courts")
	require.NoError(t, err)
	_ = rows.Close()

	assert.Equal(t, []string{"DELETE", "SELECT"}, collector.operations)
}

func TestGetExecutor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(wrapped), GetExecutor(ctx, wrapped))

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, wrapped))
}
