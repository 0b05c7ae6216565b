package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuestionHandler handles question HTTP requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns one page of ten questions with the category map
// @Tags questions
// @Produce json
// @Param page query int false "Page number, defaults to 1"
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) GetQuestions(c *fiber.Ctx) error {
	page, ok := c.Locals(middleware.LocalPage).(int)
	if !ok {
		page = 1
	}
	resp, err := h.service.GetQuestionPage(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalID).(int64)
	resp, err := h.service.DeleteQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateOrSearchQuestions godoc
// @Summary Create or search questions
// @Description Creates a question, or searches question text when searchTerm is present
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CreateOrSearchRequest true "Question fields or search term"
// @Success 200 {object} dto.CreateQuestionResponse
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *fiber.Ctx) error {
	var req dto.CreateOrSearchRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Rejecting malformed question body", zap.Error(err))
		return domain.NewInvalidInputError("Request body must be a JSON object")
	}

	if req.IsSearch() {
		resp, err := h.service.SearchQuestions(c.UserContext(), *req.SearchTerm)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
