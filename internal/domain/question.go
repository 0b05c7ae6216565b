package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Category groups questions under a display label.
type Category struct {
	ID   int64
	Type string
}

// NewCategory creates a new Category instance
func NewCategory(label string) *Category {
	return &Category{Type: label}
}

// Question is a single trivia entry. Only creation and deletion change it.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int
	CreatedAt  time.Time
}

// NewQuestion creates a new Question instance
func NewQuestion(question, answer string, category int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
		CreatedAt:  time.Now(),
	}
}

// Limits on a stored question.
const (
	MaxQuestionTextLength = 1000
	MinDifficulty         = 1
	MaxDifficulty         = 5
)

// Validate checks the fields required to persist a question.
func (q *Question) Validate() error {
	if errs := ValidateQuestionFields(q.Question, q.Answer, q.Category, q.Difficulty); len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateQuestionFields reports every field of a new question that breaks
// the stored-question limits.
func ValidateQuestionFields(question, answer string, category int64, difficulty int) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(question) == "" {
		errs = append(errs, NewMissingFieldError("question"))
	} else if n := utf8.RuneCountInString(question); n > MaxQuestionTextLength {
		errs = append(errs, NewOutOfRangeError("question", n, 1, MaxQuestionTextLength))
	}

	if strings.TrimSpace(answer) == "" {
		errs = append(errs, NewMissingFieldError("answer"))
	} else if n := utf8.RuneCountInString(answer); n > MaxQuestionTextLength {
		errs = append(errs, NewOutOfRangeError("answer", n, 1, MaxQuestionTextLength))
	}

	if category <= 0 {
		errs = append(errs, NewMissingFieldError("category"))
	}

	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		errs = append(errs, NewOutOfRangeError("difficulty", difficulty, MinDifficulty, MaxDifficulty))
	}

	return errs
}

// CategoryLabels maps category id to label, the shape the listing endpoints
// return.
func CategoryLabels(categories []*Category) map[int64]string {
	labels := make(map[int64]string, len(categories))
	for _, c := range categories {
		labels[c.ID] = c.Type
	}
	return labels
}
