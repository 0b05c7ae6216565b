package domain

// QuestionsPerPage is the fixed size of a listing page.
const QuestionsPerPage = 10

// Paginate returns the 1-indexed page window over questions. Pages below 1
// are treated as page 1 and pages past the end yield an empty slice; it never
// fails.
func Paginate(questions []*Question, page int) []*Question {
	if page < 1 {
		page = 1
	}
	if page > TotalPages(len(questions)) {
		return []*Question{}
	}
	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

// TotalPages is the number of non-empty pages for n questions.
func TotalPages(n int) int {
	return (n + QuestionsPerPage - 1) / QuestionsPerPage
}
