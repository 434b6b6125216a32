package domain

// CodingQuestion is one generated programming exercise.
type CodingQuestion struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  string     `json:"difficulty"`
	Language    string     `json:"language"`
	StarterCode string     `json:"starterCode"`
	TestCases   []TestCase `json:"testCases"`
}

// TheoryQuestion is one generated multiple-choice question.
type TheoryQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
	Explanation   string   `json:"explanation"`
}

// CodingQuestionBatch is the payload shape for a batch of coding questions,
// identical whether it came from the generative service or a fallback.
type CodingQuestionBatch struct {
	Topic     string           `json:"topic"`
	Language  string           `json:"language"`
	Questions []CodingQuestion `json:"questions"`
}

// TheoryQuestionBatch is the payload shape for a batch of theoretical
// questions.
type TheoryQuestionBatch struct {
	Topic     string           `json:"topic"`
	Questions []TheoryQuestion `json:"questions"`
}
