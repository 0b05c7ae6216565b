package service

import (
	"context"
	"errors"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/metrics"

	"go.uber.org/zap"
)

// QuizService draws quiz questions.
type QuizService interface {
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	repo       domain.QuestionRepository
	categories CategoryService
	random     domain.RandomSource
}

// NewQuizService creates a quiz service. A nil random source uses
// domain.DefaultRandom.
func NewQuizService(repo domain.QuestionRepository, categories CategoryService, random domain.RandomSource) QuizService {
	if random == nil {
		random = domain.DefaultRandom
	}
	return &quizService{repo: repo, categories: categories, random: random}
}

// NextQuestion returns a random question the player has not seen yet. When
// the pool is exhausted the response carries a null question.
func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	scope := domain.QuizScope{CategoryID: req.CategoryID()}

	var categories []*domain.Category
	if !scope.IsAll() {
		category, err := s.categories.GetCategory(ctx, scope.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			categories = []*domain.Category{category}
		}
	}

	var questions []*domain.Question
	var err error
	if scope.IsAll() {
		questions, err = s.repo.ListQuestions(ctx)
	} else {
		questions, err = s.repo.ListQuestionsByCategory(ctx, scope.CategoryID)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz pool", err)
	}

	question, err := domain.NextQuestion(scope, req.PreviousIDs(), questions, categories, s.random)
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		metrics.QuizOutcomes.WithLabelValues(metrics.OutcomeCategoryNotFound).Inc()
		return nil, domain.NewCategoryNotFoundError(scope.CategoryID)
	case errors.Is(err, domain.ErrQuizExhausted):
		metrics.QuizOutcomes.WithLabelValues(metrics.OutcomeExhausted).Inc()
		logger.Get().Debug("Quiz pool exhausted",
			zap.Int64("category_id", scope.CategoryID),
			zap.Int("previous", len(req.PreviousQuestions)))
		return &dto.QuizResponse{Success: true, Question: nil}, nil
	case err != nil:
		return nil, domain.NewInternalError("Failed to select quiz question", err)
	}

	metrics.QuizOutcomes.WithLabelValues(metrics.OutcomeServed).Inc()
	resp := dto.NewQuestionResponse(question)
	return &dto.QuizResponse{Success: true, Question: &resp}, nil
}
