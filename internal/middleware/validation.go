package middleware

import (
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalPage = "validated_page"
	LocalID   = "validated_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidatePage parses the page query parameter into c.Locals(LocalPage).
func (vm *ValidationMiddleware) ValidatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, errs := vm.validator.ParsePage(c.Query("page"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(LocalPage, page)
		return c.Next()
	}
}

// ValidateID parses the :id path parameter into c.Locals(LocalID).
func (vm *ValidationMiddleware) ValidateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, errs := vm.validator.ParseID("id", c.Params("id"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(LocalID, id)
		return c.Next()
	}
}
