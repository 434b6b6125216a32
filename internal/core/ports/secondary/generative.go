package secondary

import "context"

// GenerativeModel is the boundary to the generative content service. It
// accepts a single natural-language prompt and returns free text that may
// or may not be strict JSON; extraction is the caller's responsibility.
type GenerativeModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
