package seedmodels

// SeedQuestion defines a question entry in the JSON seed file.
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// SeedCategory defines a category and its starter questions.
type SeedCategory struct {
	Type      string         `json:"type"`
	Questions []SeedQuestion `json:"questions"`
}
