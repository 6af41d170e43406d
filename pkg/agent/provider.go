package agent

import (
	"context"
	"errors"

	"ai-helpdesk-be/internal/entity"
)

// ErrGeneration marks a failure at the generative-model boundary
// (transport, quota, malformed response). Callers recover by substituting
// the deterministic provider; it is never surfaced as a request failure.
var ErrGeneration = errors.New("generation failed")

// Provider produces classifications and draft replies for tickets.
// Two implementations exist: DeterministicProvider (keyword rules and
// templates, total and offline) and ExternalModelProvider (delegates to a
// generative model and falls back to the deterministic one on failure).
// Selected at construction time via configuration.
type Provider interface {
	ClassifyTicket(ctx context.Context, text string) (entity.ClassificationResult, error)
	DraftReply(ctx context.Context, ticket entity.Ticket, matches []entity.ArticleMatch, category entity.Category) (string, error)

	Name() string
	ModelName() string
	PromptVersion() string
}
