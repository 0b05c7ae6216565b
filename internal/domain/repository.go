package domain

import "context"

// QuestionRepository defines the interface for question persistence.
// Listing methods return questions in store order (ascending id).
type QuestionRepository interface {
	// ListQuestions returns every question
	ListQuestions(ctx context.Context) ([]*Question, error)

	// ListQuestionsByCategory returns the questions referencing categoryID
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]*Question, error)

	// GetQuestionByID returns nil, nil when no question has the id
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)

	// SaveQuestion persists a new question and sets its ID
	SaveQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion reports whether a row was removed
	DeleteQuestion(ctx context.Context, id int64) (bool, error)

	CountQuestions(ctx context.Context) (int, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	GetAllCategories(ctx context.Context) ([]*Category, error)

	// GetCategoryByID returns nil, nil when the category does not exist
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)

	// GetCategoryByType returns nil, nil when no category has the label
	GetCategoryByType(ctx context.Context, label string) (*Category, error)

	SaveCategory(ctx context.Context, category *Category) error
}

// TransactionManager runs fn inside a single store transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
