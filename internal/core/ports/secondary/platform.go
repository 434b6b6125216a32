package secondary

import (
	"context"

	"gitlab.com/elp-2025.net/internal/domain"
)

// PlatformClient is the boundary to the sibling platform microservices.
// Every call applies the shared validate/fallback contract: dependency
// outages yield a mock-provenance envelope, not an error. Only
// unrecognized failures propagate.
type PlatformClient interface {
	SendAnalyticsEvent(ctx context.Context, event map[string]interface{}) (*domain.FallbackEnvelope, error)
	RecordCourseCompletion(ctx context.Context, userID, courseID string) (*domain.FallbackEnvelope, error)
	LookupCourse(ctx context.Context, courseID string) (*domain.FallbackEnvelope, error)
	SyncAssessment(ctx context.Context, assessment map[string]interface{}) (*domain.FallbackEnvelope, error)
	AskChat(ctx context.Context, question string) (*domain.FallbackEnvelope, error)
	ValidateContent(ctx context.Context, content map[string]interface{}) (*domain.FallbackEnvelope, error)
	RequestContentGeneration(ctx context.Context, request map[string]interface{}) (*domain.FallbackEnvelope, error)
}
