package dto

// QuizCategoryRequest identifies the quiz pool. ID 0 means every category.
type QuizCategoryRequest struct {
	ID   FlexInt `json:"id" swaggertype:"integer"`
	Type string  `json:"type,omitempty"`
}

// QuizRequest is the body of POST /quizzes
// @Description Request the next quiz question
type QuizRequest struct {
	PreviousQuestions []FlexInt            `json:"previous_questions" swaggertype:"array,integer"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
}

// CategoryID returns the requested category, 0 when none was given.
func (r *QuizRequest) CategoryID() int64 {
	if r.QuizCategory == nil {
		return 0
	}
	return r.QuizCategory.ID.Int64()
}

// PreviousIDs returns the seen question ids.
func (r *QuizRequest) PreviousIDs() []int64 {
	ids := make([]int64, len(r.PreviousQuestions))
	for i, id := range r.PreviousQuestions {
		ids[i] = id.Int64()
	}
	return ids
}

// QuizResponse is the body of POST /quizzes. Question is null once every
// question in the pool has been seen.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Success bool              `json:"success"`
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
}
