package service

import (
	"context"
	"sort"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/metrics"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
)

// QuestionService defines the interface for question operations
type QuestionService interface {
	GetQuestionPage(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	GetQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateOrSearchRequest) (*dto.CreateQuestionResponse, error)
	SearchQuestions(ctx context.Context, term string) (*dto.SearchResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
}

type questionService struct {
	repo       domain.QuestionRepository
	categories CategoryService
	events     domain.EventPublisher
	validator  *validation.Validator
}

// NewQuestionService creates a new question service. A nil publisher drops
// events.
func NewQuestionService(repo domain.QuestionRepository, categories CategoryService, events domain.EventPublisher) QuestionService {
	if events == nil {
		events = domain.NopEventPublisher{}
	}
	return &questionService{
		repo:       repo,
		categories: categories,
		events:     events,
		validator:  validation.NewValidator(),
	}
}

// GetQuestionPage returns one page of all questions. An empty page is a
// not-found error; pages past the stored count are rejected before the
// questions are loaded.
func (s *questionService) GetQuestionPage(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	total, err := s.repo.CountQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to count questions", err)
	}
	if max(page, 1) > domain.TotalPages(total) {
		return nil, domain.NewPageNotFoundError(page)
	}

	all, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	window := domain.Paginate(all, page)
	if len(window) == 0 {
		return nil, domain.NewPageNotFoundError(page)
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.QuestionPageResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(window),
		TotalQuestions:  len(all),
		Categories:      domain.CategoryLabels(categories),
		CurrentCategory: distinctCategories(window),
	}, nil
}

func (s *questionService) GetQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error) {
	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(categoryID)
	}

	questions, err := s.repo.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions by category", err)
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: category.ID,
	}, nil
}

// CreateQuestion validates and stores a new question. A category that does
// not exist makes the request unprocessable.
func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateOrSearchRequest) (*dto.CreateQuestionResponse, error) {
	if errs := s.validator.ValidateCreateQuestion(req.Question, req.Answer, req.Category.Int64(), req.Difficulty.Int()); len(errs) > 0 {
		return nil, errs
	}

	category, err := s.categories.GetCategory(ctx, req.Category.Int64())
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewUnprocessableError("Category does not exist").
			WithContext("category_id", req.Category.Int64())
	}

	question := domain.NewQuestion(req.Question, req.Answer, category.ID, req.Difficulty.Int())
	if err := s.repo.SaveQuestion(ctx, question); err != nil {
		return nil, domain.NewInternalError("Failed to save question", err)
	}

	metrics.QuestionsCreated.Inc()
	logger.Get().Info("Question created", zap.Int64("question_id", question.ID), zap.Int64("category_id", question.Category))
	s.publish(ctx, domain.EventQuestionCreated, domain.QuestionEvent{QuestionID: question.ID, CategoryID: question.Category})

	return &dto.CreateQuestionResponse{Success: true, Created: question.ID}, nil
}

// SearchQuestions returns the questions whose text contains term, ignoring
// case.
func (s *questionService) SearchQuestions(ctx context.Context, term string) (*dto.SearchResponse, error) {
	if errs := s.validator.ValidateSearchTerm(term); len(errs) > 0 {
		return nil, errs
	}

	all, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	matches := domain.FilterByText(all, term)
	return &dto.SearchResponse{
		Success:        true,
		Questions:      dto.NewQuestionResponses(matches),
		TotalQuestions: len(matches),
	}, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	question, err := s.repo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	deleted, err := s.repo.DeleteQuestion(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to delete question", err)
	}
	if !deleted {
		// Removed concurrently between the lookup and the delete.
		return nil, domain.NewQuestionNotFoundError(id)
	}

	metrics.QuestionsDeleted.Inc()
	logger.Get().Info("Question deleted", zap.Int64("question_id", id))
	s.publish(ctx, domain.EventQuestionDeleted, domain.QuestionEvent{QuestionID: id, CategoryID: question.Category})

	return &dto.DeleteQuestionResponse{Success: true, Deleted: id}, nil
}

func (s *questionService) publish(ctx context.Context, eventType string, event domain.QuestionEvent) {
	if err := s.events.Publish(ctx, eventType, event); err != nil {
		logger.Get().Warn("QuestionService: failed to publish event",
			zap.String("type", eventType),
			zap.Int64("question_id", event.QuestionID),
			zap.Error(err))
	}
}

// distinctCategories returns the category ids present in questions, sorted.
func distinctCategories(questions []*domain.Question) []int64 {
	seen := make(map[int64]struct{}, len(questions))
	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		ids = append(ids, q.Category)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
