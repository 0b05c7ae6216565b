package validation

import (
	"strings"
	"testing"

	"trivia-api/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateQuestion(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		question   string
		answer     string
		category   int64
		difficulty int
		wantFields []string
	}{
		{name: "valid", question: "Who discovered penicillin?", answer: "Alexander Fleming", category: 1, difficulty: 3},
		{name: "blank question", question: "  ", answer: "A", category: 1, difficulty: 1, wantFields: []string{"question"}},
		{name: "missing answer", question: "Q", answer: "", category: 1, difficulty: 1, wantFields: []string{"answer"}},
		{name: "no category", question: "Q", answer: "A", category: 0, difficulty: 1, wantFields: []string{"category"}},
		{name: "difficulty too high", question: "Q", answer: "A", category: 1, difficulty: 6, wantFields: []string{"difficulty"}},
		{name: "everything missing", wantFields: []string{"question", "answer", "category", "difficulty"}},
		{name: "question too long", question: strings.Repeat("q", domain.MaxQuestionTextLength+1), answer: "A", category: 1, difficulty: 1, wantFields: []string{"question"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateCreateQuestion(tt.question, tt.answer, tt.category, tt.difficulty)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidateSearchTerm(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSearchTerm("ho"))
	assert.Empty(t, v.ValidateSearchTerm("Title"))

	for _, term := range []string{"", " ", "\t\n"} {
		errs := v.ValidateSearchTerm(term)
		if assert.Len(t, errs, 1, "term %q", term) {
			assert.Equal(t, domain.CodeMissingField, errs[0].Code)
		}
	}

	errs := v.ValidateSearchTerm(strings.Repeat("x", MaxSearchLength+1))
	if assert.Len(t, errs, 1) {
		assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
	}
}

func TestParsePage(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 1},
		{raw: "2", want: 2},
		{raw: "0", want: 0},
		{raw: "-3", want: -3},
		{raw: "abc", wantErr: true},
		{raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		page, errs := v.ParsePage(tt.raw)
		if tt.wantErr {
			assert.NotEmpty(t, errs, "raw %q", tt.raw)
			continue
		}
		assert.Empty(t, errs, "raw %q", tt.raw)
		assert.Equal(t, tt.want, page, "raw %q", tt.raw)
	}
}

func TestParseID(t *testing.T) {
	v := NewValidator()

	id, errs := v.ParseID("id", "42")
	assert.Empty(t, errs)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "x"} {
		_, errs := v.ParseID("id", raw)
		assert.Len(t, errs, 1, "raw %q", raw)
	}
}
