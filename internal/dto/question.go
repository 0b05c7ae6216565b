package dto

import "trivia-api/internal/domain"

// QuestionResponse represents a question in the API response
// @Description Trivia question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse converts a domain question.
func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses converts a slice, never returning nil so the JSON
// field is always an array.
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = NewQuestionResponse(q)
	}
	return out
}

// CreateOrSearchRequest is the body of POST /questions. A present
// searchTerm key selects search; otherwise the body creates a question.
// @Description Create a question, or search when searchTerm is set
type CreateOrSearchRequest struct {
	SearchTerm *string `json:"searchTerm,omitempty"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   FlexInt `json:"category" swaggertype:"integer"`
	Difficulty FlexInt `json:"difficulty" swaggertype:"integer"`
}

// IsSearch reports whether the request asks for a search.
func (r *CreateOrSearchRequest) IsSearch() bool {
	return r.SearchTerm != nil
}

// CategoriesResponse is the body of GET /categories
type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionPageResponse is the body of GET /questions
type QuestionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[int64]string   `json:"categories"`
	CurrentCategory []int64            `json:"current_category"`
}

// CategoryQuestionsResponse is the body of GET /categories/{id}/questions
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory int64              `json:"current_category"`
}

// SearchResponse is the body of POST /questions with a searchTerm
type SearchResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

type CreateQuestionResponse struct {
	Success bool  `json:"success"`
	Created int64 `json:"created"`
}

type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}
