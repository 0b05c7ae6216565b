package handler

import (
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups the handlers mounted by RegisterRoutes.
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
}

// RegisterRoutes mounts the trivia API on router.
func RegisterRoutes(router fiber.Router, h Handlers) {
	vm := middleware.NewValidationMiddleware()

	router.Get("/categories", h.Category.GetCategories)
	router.Get("/categories/:id/questions", vm.ValidateID(), h.Category.GetCategoryQuestions)

	router.Get("/questions", vm.ValidatePage(), h.Question.GetQuestions)
	router.Post("/questions", h.Question.CreateOrSearchQuestions)
	router.Delete("/questions/:id", vm.ValidateID(), h.Question.DeleteQuestion)

	router.Post("/quizzes", h.Quiz.PlayQuiz)
}
