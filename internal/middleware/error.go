package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

const internalErrorMessage = "internal server error"

// NewErrorResponse builds the error envelope for status.
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: status, Message: message}
}

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(zap.String("path", c.Path()), zap.String("request_id", RequestID(c)))

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Validation errors occurred", zap.Int("error_count", len(validationErrs)), zap.Error(err))
			return c.Status(http.StatusBadRequest).JSON(NewErrorResponse(http.StatusBadRequest, validationErrs.Error()))
		}

		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			log.Warn("Validation error occurred", zap.String("field", validationErr.Field))
			return c.Status(http.StatusBadRequest).JSON(NewErrorResponse(http.StatusBadRequest, validationErr.Error()))
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := mapDomainErrorToHTTPStatus(domainErr)
			message := domainErr.Message
			if status == http.StatusInternalServerError {
				log.Error("Domain error occurred",
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.Error(domainErr.Cause),
				)
				message = internalErrorMessage
			} else {
				log.Info("Request rejected",
					zap.String("code", string(domainErr.Code)),
					zap.Int("status", status),
					zap.Any("context", domainErr.Context),
				)
			}
			return c.Status(status).JSON(NewErrorResponse(status, message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred", zap.Int("code", fiberErr.Code), zap.String("message", fiberErr.Message))
			message := fiberErr.Message
			if fiberErr.Code >= http.StatusInternalServerError {
				message = internalErrorMessage
			}
			return c.Status(fiberErr.Code).JSON(NewErrorResponse(fiberErr.Code, message))
		}

		log.Error("Unknown error occurred", zap.Error(err))
		return c.Status(http.StatusInternalServerError).
			JSON(NewErrorResponse(http.StatusInternalServerError, internalErrorMessage))
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound, domain.CodeQuestionNotFound, domain.CodeCategoryNotFound, domain.CodePageNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeMissingField,
		domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
