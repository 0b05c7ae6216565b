package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
)

// Quoted lowercase aliases keep column names stable on Oracle, which
// otherwise reports them in upper case.
const questionColumns = `id "id", question "question", answer "answer", category "category", difficulty "difficulty", created_at "created_at"`

type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// ListQuestions returns every question ordered by id
func (r *QuestionDatabaseAdapter) ListQuestions(ctx context.Context) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, r.db)
	query := "SELECT " + questionColumns + " FROM questions ORDER BY id"

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query)); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return convertToDomainQuestions(rows), nil
}

// ListQuestionsByCategory returns the questions of one category ordered by id
func (r *QuestionDatabaseAdapter) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, r.db)
	query := "SELECT " + questionColumns + " FROM questions WHERE category = ? ORDER BY id"

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), categoryID); err != nil {
		return nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}
	return convertToDomainQuestions(rows), nil
}

func (r *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, r.db)
	query := "SELECT " + questionColumns + " FROM questions WHERE id = ?"

	var row models.Question
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %d: %w", id, err)
	}
	return convertToDomainQuestion(&row), nil
}

// SaveQuestion inserts the question and stores the generated id on it
func (r *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}

	exec := GetExecutor(ctx, r.db)
	insert := `INSERT INTO questions (question, answer, category, difficulty, created_at) VALUES (?, ?, ?, ?, ?)`
	id, err := insertReturningID(ctx, exec, insert,
		question.Question, question.Answer, question.Category, question.Difficulty, question.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	question.ID = id
	return nil
}

func (r *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	result, err := exec.ExecContext(ctx, exec.Rebind("DELETE FROM questions WHERE id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *QuestionDatabaseAdapter) CountQuestions(ctx context.Context) (int, error) {
	exec := GetExecutor(ctx, r.db)
	var n int
	if err := exec.GetContext(ctx, &n, "SELECT COUNT(*) FROM questions"); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}

func convertToDomainQuestion(q *models.Question) *domain.Question {
	return &domain.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		CreatedAt:  q.CreatedAt,
	}
}

func convertToDomainQuestions(rows []models.Question) []*domain.Question {
	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = convertToDomainQuestion(&rows[i])
	}
	return questions
}
