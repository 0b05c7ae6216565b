package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// PlayQuiz godoc
// @Summary Next quiz question
// @Description Returns a random question not in previous_questions. question is null once the pool is exhausted. quiz_category.id 0 draws from every category.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Seen questions and category"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be a JSON object")
	}

	resp, err := h.service.NextQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
