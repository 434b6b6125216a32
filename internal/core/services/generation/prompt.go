package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"gitlab.com/elp-2025.net/internal/domain"
)

func buildCodingQuestionsPrompt(topic, language string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d coding exercises about %q for the %s programming language.\n", count, topic, language)
	b.WriteString("Respond with a single JSON object of the shape:\n")
	b.WriteString(`{"topic":"...","language":"...","questions":[{"title":"...","description":"...","difficulty":"easy|medium|hard","starterCode":"...","testCases":[{"input":"...","expected_output":"...","is_hidden":false}]}]}`)
	b.WriteString("\nEvery question needs at least one visible test case. Do not include any text outside the JSON object.")
	return b.String()
}

func buildTheoryQuestionsPrompt(topic string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple-choice questions about %q.\n", count, topic)
	b.WriteString("Respond with a single JSON object of the shape:\n")
	b.WriteString(`{"topic":"...","questions":[{"question":"...","options":["...","...","...","..."],"correctOption":0,"explanation":"..."}]}`)
	b.WriteString("\nEach question has exactly four options. Do not include any text outside the JSON object.")
	return b.String()
}

func buildFeedbackPrompt(request *FeedbackRequest) string {
	outcome := "failed"
	if request.Passed {
		outcome = "passed"
	}
	targetLanguage := request.TargetLanguage
	if targetLanguage == "" {
		targetLanguage = "English"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "A student submitted the following %s solution for the exercise %q and it %s the tests.\n", request.Language, request.QuestionTitle, outcome)
	fmt.Fprintf(&b, "Code:\n%s\n", request.Code)
	if request.Stdout != "" {
		fmt.Fprintf(&b, "Program output:\n%s\n", request.Stdout)
	}
	fmt.Fprintf(&b, "Write short, encouraging feedback in %s on correctness and style.\n", targetLanguage)
	b.WriteString(`Respond with a single JSON object: {"feedback":"..."}`)
	return b.String()
}

func buildHintsPrompt(questionContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A student is stuck on this exercise:\n%s\n", questionContext)
	fmt.Fprintf(&b, "Provide exactly %d hints, each more specific than the last. ", domain.HintsPerQuestion)
	b.WriteString("The first hint nudges the approach, the second names the technique, the third outlines the solution without code.\n")
	b.WriteString(`Respond with a single JSON object: {"hints":["...","...","..."]}`)
	return b.String()
}

func buildFraudPrompt(signals *FraudSignals) (string, error) {
	encoded, err := json.Marshal(signals.Signals)
	if err != nil {
		return "", fmt.Errorf("failed to encode fraud signals: %w", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Assess the likelihood that submission %s by user %s involved plagiarism or automated assistance.\n", signals.SubmissionID, signals.UserID)
	fmt.Fprintf(&b, "Behavioral signals:\n%s\n", encoded)
	b.WriteString("Score from 0 (no concern) to 100 (certain fraud).\n")
	b.WriteString(`Respond with a single JSON object: {"score":0,"level":"low|medium|high|very_high","detail":"..."}`)
	return b.String(), nil
}
