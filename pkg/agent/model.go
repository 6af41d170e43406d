package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"ai-helpdesk-be/internal/entity"
	"ai-helpdesk-be/pkg/llm"
)

// ExternalModelProvider delegates classification and drafting to a
// generative model. Every failure at that boundary (transport, timeout,
// unparseable answer) is recovered locally by the embedded deterministic
// provider, so a broken or unreachable model never fails a request.
type ExternalModelProvider struct {
	llmProvider llm.LLMProvider
	fallback    *DeterministicProvider
	logger      *log.Logger

	providerName string
	modelName    string
	timeout      time.Duration
}

var _ Provider = &ExternalModelProvider{}

func NewExternalModelProvider(
	llmProvider llm.LLMProvider,
	fallback *DeterministicProvider,
	logger *log.Logger,
	providerName string,
	modelName string,
	timeout time.Duration,
) *ExternalModelProvider {
	return &ExternalModelProvider{
		llmProvider:  llmProvider,
		fallback:     fallback,
		logger:       logger,
		providerName: providerName,
		modelName:    modelName,
		timeout:      timeout,
	}
}

func (p *ExternalModelProvider) Name() string          { return p.providerName }
func (p *ExternalModelProvider) ModelName() string     { return p.modelName }
func (p *ExternalModelProvider) PromptVersion() string { return promptVersion }

type classificationAnswer struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

func (p *ExternalModelProvider) ClassifyTicket(ctx context.Context, text string) (entity.ClassificationResult, error) {
	result, err := p.classify(ctx, text)
	if err != nil {
		p.logger.Printf("[WARN] Model classification failed, using stub: %v", err)
		return p.fallback.ClassifyTicket(ctx, text)
	}
	return result, nil
}

func (p *ExternalModelProvider) classify(ctx context.Context, text string) (entity.ClassificationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.llmProvider.Generate(ctx, buildClassificationPrompt(text), llm.WithTemperature(0.0))
	if err != nil {
		return entity.ClassificationResult{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var answer classificationAnswer
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &answer); err != nil {
		return entity.ClassificationResult{}, fmt.Errorf("%w: parse classification: %v", ErrGeneration, err)
	}

	category, ok := entity.ParseCategory(answer.Category)
	if !ok {
		return entity.ClassificationResult{}, fmt.Errorf("%w: unknown category %q", ErrGeneration, answer.Category)
	}

	confidence := answer.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return entity.ClassificationResult{
		PredictedCategory: category,
		Confidence:        confidence,
	}, nil
}

func (p *ExternalModelProvider) DraftReply(ctx context.Context, ticket entity.Ticket, matches []entity.ArticleMatch, category entity.Category) (string, error) {
	draft, err := p.draft(ctx, ticket, matches, category)
	if err != nil {
		p.logger.Printf("[WARN] Model drafting failed, using stub: %v", err)
		return p.fallback.DraftReply(ctx, ticket, matches, category)
	}
	return draft, nil
}

func (p *ExternalModelProvider) draft(ctx context.Context, ticket entity.Ticket, matches []entity.ArticleMatch, category entity.Category) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.llmProvider.Generate(ctx, buildDraftPrompt(ticket, matches, category))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	draft := strings.TrimSpace(raw)
	if draft == "" {
		return "", fmt.Errorf("%w: empty draft", ErrGeneration)
	}
	return draft, nil
}

// stripCodeFences unwraps ```json ... ``` blocks that chat models tend to
// put around JSON answers.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
