package resume

import (
	"context"

	"offerai-backend/internal/llm"
	"offerai-backend/internal/profile"
)

// Pipeline orchestrates validation, prompt building, the generation call,
// and normalization. It holds no state between invocations.
type Pipeline struct {
	client llm.Client
}

// NewPipeline constructs a Pipeline around the given generation client.
func NewPipeline(client llm.Client) *Pipeline {
	return &Pipeline{client: client}
}

// Generate runs the full pipeline for a profile. Validation failures return
// a *profile.ValidationError and the generation client is never invoked.
// Client failures return a *llm.Error unchanged. On success the returned
// content is normalized, blank-line-separated paragraph text.
func (p *Pipeline) Generate(ctx context.Context, up profile.UserProfile) (string, error) {
	if verr := profile.Validate(up); verr != nil {
		return "", verr
	}

	raw, err := p.client.Complete(ctx, SystemPrompt(), BuildUserPrompt(up))
	if err != nil {
		return "", llm.Classify(err)
	}
	return Normalize(raw), nil
}
