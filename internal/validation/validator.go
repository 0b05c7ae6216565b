package validation

import (
	"strconv"
	"strings"

	"trivia-api/internal/domain"
)

const (
	MaxSearchLength  = 200
	defaultPageParam = 1
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuestion checks the fields needed to create a question
// against the same limits the domain enforces on stored questions.
func (v *Validator) ValidateCreateQuestion(question, answer string, category int64, difficulty int) domain.ValidationErrors {
	return domain.ValidateQuestionFields(question, answer, category, difficulty)
}

// ValidateSearchTerm rejects empty and whitespace-only terms.
func (v *Validator) ValidateSearchTerm(term string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(term) == "" {
		errors = append(errors, domain.NewMissingFieldError("searchTerm"))
	} else if len(term) > MaxSearchLength {
		errors = append(errors, domain.NewOutOfRangeError("searchTerm", len(term), 1, MaxSearchLength))
	}

	return errors
}

// ParsePage parses the page query parameter. An absent value means page 1.
// Values below 1 are accepted here and clamped by the pager.
func (v *Validator) ParsePage(raw string) (int, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return defaultPageParam, nil
	}
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("page", raw)}
	}
	return page, nil
}

// ParseID parses a positive integer path parameter.
func (v *Validator) ParseID(field, raw string) (int64, domain.ValidationErrors) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError(field, raw)}
	}
	return id, nil
}
