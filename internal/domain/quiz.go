package domain

import "math/rand"

// AllCategories is the category id clients send to draw from every category.
const AllCategories int64 = 0

// QuizScope selects the pool a quiz draws from.
type QuizScope struct {
	CategoryID int64
}

// IsAll reports whether the scope covers every category.
func (s QuizScope) IsAll() bool {
	return s.CategoryID == AllCategories
}

// RandomSource picks an index in [0, n). Implementations used by services
// must be safe for concurrent use.
type RandomSource interface {
	Intn(n int) int
}

type globalRandom struct{}

func (globalRandom) Intn(n int) int {
	return rand.Intn(n)
}

// DefaultRandom draws from math/rand's shared, goroutine-safe generator.
var DefaultRandom RandomSource = globalRandom{}

// NextQuestion picks one question uniformly at random from the scope's pool,
// skipping any id in previousIDs. It returns ErrCategoryNotFound when a
// specific category is not in categories and ErrQuizExhausted when every
// question in the pool has been seen. Inputs are never modified.
func NextQuestion(scope QuizScope, previousIDs []int64, questions []*Question, categories []*Category, rnd RandomSource) (*Question, error) {
	if !scope.IsAll() && !hasCategory(categories, scope.CategoryID) {
		return nil, ErrCategoryNotFound
	}

	seen := make(map[int64]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}

	unseen := make([]*Question, 0, len(questions))
	for _, q := range questions {
		if !scope.IsAll() && q.Category != scope.CategoryID {
			continue
		}
		if _, ok := seen[q.ID]; ok {
			continue
		}
		unseen = append(unseen, q)
	}

	if len(unseen) == 0 {
		return nil, ErrQuizExhausted
	}
	if rnd == nil {
		rnd = DefaultRandom
	}
	return unseen[rnd.Intn(len(unseen))], nil
}

func hasCategory(categories []*Category, id int64) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
