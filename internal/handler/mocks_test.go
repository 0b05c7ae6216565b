package handler_test

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// --- Manual Mocks ---

// MockCategoryService
type MockCategoryService struct {
	ListCategoriesFunc func(ctx context.Context) ([]*domain.Category, error)
	GetCategoryFunc    func(ctx context.Context, id int64) (*domain.Category, error)
	GetCategoriesFunc  func(ctx context.Context) (*dto.CategoriesResponse, error)
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	panic("MockCategoryService.ListCategoriesFunc not implemented")
}

func (m *MockCategoryService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	if m.GetCategoryFunc != nil {
		return m.GetCategoryFunc(ctx, id)
	}
	panic("MockCategoryService.GetCategoryFunc not implemented")
}

func (m *MockCategoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}
	panic("MockCategoryService.GetCategoriesFunc not implemented")
}

func (m *MockCategoryService) InvalidateCache(ctx context.Context) {}

// MockQuestionService
type MockQuestionService struct {
	GetQuestionPageFunc        func(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	GetQuestionsByCategoryFunc func(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error)
	CreateQuestionFunc         func(ctx context.Context, req *dto.CreateOrSearchRequest) (*dto.CreateQuestionResponse, error)
	SearchQuestionsFunc        func(ctx context.Context, term string) (*dto.SearchResponse, error)
	DeleteQuestionFunc         func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
}

func (m *MockQuestionService) GetQuestionPage(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	if m.GetQuestionPageFunc != nil {
		return m.GetQuestionPageFunc(ctx, page)
	}
	panic("MockQuestionService.GetQuestionPageFunc not implemented")
}

func (m *MockQuestionService) GetQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error) {
	if m.GetQuestionsByCategoryFunc != nil {
		return m.GetQuestionsByCategoryFunc(ctx, categoryID)
	}
	panic("MockQuestionService.GetQuestionsByCategoryFunc not implemented")
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.CreateOrSearchRequest) (*dto.CreateQuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}

func (m *MockQuestionService) SearchQuestions(ctx context.Context, term string) (*dto.SearchResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, term)
	}
	panic("MockQuestionService.SearchQuestionsFunc not implemented")
}

func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	NextQuestionFunc func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

func (m *MockQuizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if m.NextQuestionFunc != nil {
		return m.NextQuestionFunc(ctx, req)
	}
	panic("MockQuizService.NextQuestionFunc not implemented")
}
