package fallback

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/elp-2025.net/internal/domain"
)

// Synthetic-data constructors, one per external capability. Each produces
// the same required fields as the real response, tagged with mock
// provenance and a note naming the unavailable dependency. They are the
// last line of defense and must always succeed.

// MockCodingQuestions builds a placeholder coding-question batch.
func MockCodingQuestions(topic, language string, count int) *domain.FallbackEnvelope {
	if count <= 0 {
		count = 1
	}
	questions := make([]domain.CodingQuestion, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, domain.CodingQuestion{
			ID:          uuid.New().String(),
			Title:       fmt.Sprintf("Practice exercise %d: %s", i+1, topic),
			Description: fmt.Sprintf("Write a %s program that prints the numbers 1 through %d, one per line.", language, (i+1)*10),
			Difficulty:  "easy",
			Language:    language,
			StarterCode: "",
			TestCases: []domain.TestCase{
				{ID: uuid.New(), Input: "", ExpectedOutput: "1", IsHidden: false},
			},
		})
	}
	batch := domain.CodingQuestionBatch{Topic: topic, Language: language, Questions: questions}
	return domain.MockEnvelope(batch, "generative service unavailable, serving placeholder coding questions")
}

// MockTheoryQuestions builds a placeholder theoretical-question batch.
func MockTheoryQuestions(topic string, count int) *domain.FallbackEnvelope {
	if count <= 0 {
		count = 1
	}
	questions := make([]domain.TheoryQuestion, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, domain.TheoryQuestion{
			ID:            uuid.New().String(),
			Question:      fmt.Sprintf("Which statement about %s is correct?", topic),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectOption: 0,
			Explanation:   "Placeholder question generated while the content service is unavailable.",
		})
	}
	batch := domain.TheoryQuestionBatch{Topic: topic, Questions: questions}
	return domain.MockEnvelope(batch, "generative service unavailable, serving placeholder theory questions")
}

// MockAnalyticsAck acknowledges an analytics event that could not be
// delivered.
func MockAnalyticsAck() *domain.FallbackEnvelope {
	ack := domain.AnalyticsAck{
		EventID:    uuid.New().String(),
		Accepted:   true,
		ReceivedAt: time.Now(),
	}
	return domain.MockEnvelope(ack, "analytics service unavailable, event acknowledged locally")
}

// MockAssessmentAck acknowledges an assessment record that could not be
// synced.
func MockAssessmentAck() *domain.FallbackEnvelope {
	ack := domain.AnalyticsAck{
		EventID:    uuid.New().String(),
		Accepted:   true,
		ReceivedAt: time.Now(),
	}
	return domain.MockEnvelope(ack, "assessment service unavailable, record acknowledged locally")
}

// MockCompletionAck acknowledges a course completion that could not be
// recorded remotely.
func MockCompletionAck(userID, courseID string) *domain.FallbackEnvelope {
	ack := domain.CompletionAck{
		CertificateID: uuid.New().String(),
		CourseID:      courseID,
		UserID:        userID,
		IssuedAt:      time.Now(),
	}
	return domain.MockEnvelope(ack, "course service unavailable, completion acknowledged locally")
}

// MockCatalogEntry stands in for a catalog lookup.
func MockCatalogEntry(courseID string) *domain.FallbackEnvelope {
	entry := domain.CatalogEntry{
		CourseID:    courseID,
		Title:       "Course details temporarily unavailable",
		ModuleCount: 0,
		Published:   true,
	}
	return domain.MockEnvelope(entry, "catalog service unavailable, serving placeholder course entry")
}

// MockChatAnswer stands in for a RAG chat response.
func MockChatAnswer(question string) *domain.FallbackEnvelope {
	answer := domain.ChatAnswer{
		Answer:  fmt.Sprintf("I can't reach the knowledge base right now to answer %q. Please try again in a moment.", question),
		Sources: []string{},
	}
	return domain.MockEnvelope(answer, "chat service unavailable, serving placeholder answer")
}

// MockValidationVerdict accepts content optimistically when the content
// studio cannot be reached.
func MockValidationVerdict() *domain.FallbackEnvelope {
	verdict := domain.ValidationVerdict{
		Valid:  true,
		Issues: []string{},
	}
	return domain.MockEnvelope(verdict, "content studio unavailable, content accepted without validation")
}

// MockGenerationNotice acknowledges a content-generation request that
// could not be queued.
func MockGenerationNotice() *domain.FallbackEnvelope {
	notice := domain.GenerationNotice{
		JobID:    uuid.New().String(),
		Status:   "deferred",
		QueuedAt: time.Now(),
	}
	return domain.MockEnvelope(notice, "content studio unavailable, generation request deferred")
}
