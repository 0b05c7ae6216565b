package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var questionRowColumns = []string{"id", "question", "answer", "category", "difficulty", "created_at"}

func TestListQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows(questionRowColumns).
		AddRow(1, "What is the heaviest organ?", "The liver", 1, 4, now).
		AddRow(2, "Who painted the Mona Lisa?", "Leonardo da Vinci", 2, 3, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions ORDER BY id`)).WillReturnRows(rows)

	result, err := repo.ListQuestions(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, "The liver", result[0].Answer)
	assert.Equal(t, int64(2), result[1].Category)
	assert.Equal(t, 3, result[1].Difficulty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuestions_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(questionRowColumns))

	result, err := repo.ListQuestions(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuestions_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions`)).WillReturnError(errors.New("connection reset"))

	result, err := repo.ListQuestions(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list questions")
}

func TestListQuestionsByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow(5, "Largest ocean?", "Pacific", 3, 1, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions WHERE category = ? ORDER BY id`)).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	result, err := repo.ListQuestionsByCategory(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(5), result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)

		rows := sqlmock.NewRows(questionRowColumns).AddRow(9, "Q", "A", 1, 2, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta(`FROM questions WHERE id = ?`)).
			WithArgs(int64(9)).
			WillReturnRows(rows)

		q, err := repo.GetQuestionByID(context.Background(), 9)

		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, "Q", q.Question)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM questions WHERE id = ?`)).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(questionRowColumns))

		q, err := repo.GetQuestionByID(context.Background(), 404)

		assert.NoError(t, err)
		assert.Nil(t, q)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaveQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	q := domain.NewQuestion("Who wrote Hamlet?", "Shakespeare", 4, 2)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO questions (question, answer, category, difficulty, created_at) VALUES (?, ?, ?, ?, ?) RETURNING id`)).
		WithArgs("Who wrote Hamlet?", "Shakespeare", int64(4), 2, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(24))

	err := repo.SaveQuestion(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, int64(24), q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestion_SetsCreatedAt(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	q := &domain.Question{Question: "Q", Answer: "A", Category: 1, Difficulty: 1}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO questions`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	require.NoError(t, repo.SaveQuestion(context.Background(), q))
	assert.False(t, q.CreatedAt.IsZero())
}

func TestSaveQuestion_Nil(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	assert.Error(t, repo.SaveQuestion(context.Background(), nil))
}

func TestSaveQuestion_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO questions`)).WillReturnError(errors.New("constraint violation"))

	q := domain.NewQuestion("Q", "A", 1, 1)
	err := repo.SaveQuestion(context.Background(), q)

	assert.Error(t, err)
	assert.Equal(t, int64(0), q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestion(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "row removed", affected: 1, want: true},
		{name: "no such row", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewQuestionDatabaseAdapter(db)

			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM questions WHERE id = ?`)).
				WithArgs(int64(7)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			deleted, err := repo.DeleteQuestion(context.Background(), 7)

			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCountQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM questions`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(19))

	n, err := repo.CountQuestions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 19, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
