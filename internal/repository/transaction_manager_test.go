package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction_Commit(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories`)).
		WithArgs("Art").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return repo.SaveCategory(ctx, domain.NewCategory("Art"))
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_Rollback(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor(t *testing.T) {
	db, mock := setupTestDB(t)

	assert.Equal(t, DBTX(db), GetExecutor(context.Background(), db))

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), TransactionContextKey, tx)
	assert.Equal(t, DBTX(tx), GetExecutor(ctx, db))
}
