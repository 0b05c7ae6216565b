package handler

import (
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categories service.CategoryService
	questions  service.QuestionService
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categories service.CategoryService, questions service.QuestionService) *CategoryHandler {
	return &CategoryHandler{categories: categories, questions: questions}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category as an id to label map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.categories.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCategoryQuestions godoc
// @Summary List questions of a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *CategoryHandler) GetCategoryQuestions(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalID).(int64)
	resp, err := h.questions.GetQuestionsByCategory(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
