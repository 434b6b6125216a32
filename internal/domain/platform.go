package domain

import "time"

// AnalyticsAck acknowledges an analytics event delivery.
type AnalyticsAck struct {
	EventID    string    `json:"eventId"`
	Accepted   bool      `json:"accepted"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// CompletionAck acknowledges a course-completion record.
type CompletionAck struct {
	CertificateID string    `json:"certificateId"`
	CourseID      string    `json:"courseId"`
	UserID        string    `json:"userId"`
	IssuedAt      time.Time `json:"issuedAt"`
}

// CatalogEntry is a course-catalog lookup result.
type CatalogEntry struct {
	CourseID    string `json:"courseId"`
	Title       string `json:"title"`
	ModuleCount int    `json:"moduleCount"`
	Published   bool   `json:"published"`
}

// ChatAnswer is a RAG chat response.
type ChatAnswer struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// ValidationVerdict is a content-validation result from the content studio.
type ValidationVerdict struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// GenerationNotice acknowledges a queued content-generation request.
type GenerationNotice struct {
	JobID    string    `json:"jobId"`
	Status   string    `json:"status"`
	QueuedAt time.Time `json:"queuedAt"`
}
