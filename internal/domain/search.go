package domain

import "strings"

// FilterByText returns the questions whose text contains term, ignoring
// case, in their original order. Callers reject blank terms beforehand.
func FilterByText(questions []*Question, term string) []*Question {
	needle := strings.ToLower(term)
	matches := make([]*Question, 0)
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches
}
