package domain

import "time"

// HintsPerQuestion is the fixed size of a hint set. A question has either
// zero or exactly this many stored hints, never a partial set.
const HintsPerQuestion = 3

// HintSet holds the ordered, progressively more specific hints for one
// question. Generated atomically in a single call and cached thereafter.
type HintSet struct {
	QuestionID string    `json:"questionId"`
	Hints      []string  `json:"hints"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Complete reports whether the set holds the full hint count.
func (h *HintSet) Complete() bool {
	return h != nil && len(h.Hints) == HintsPerQuestion
}
