package agent

import (
	"context"
	"fmt"
	"strings"

	"ai-helpdesk-be/internal/entity"
	"ai-helpdesk-be/pkg/classifier"
)

// DeterministicProvider is the stub provider: keyword classification and
// template drafting with no external calls. Total functions, so triage
// stays fully reproducible when no model is configured.
type DeterministicProvider struct {
	classifier *classifier.KeywordClassifier
}

var _ Provider = &DeterministicProvider{}

func NewDeterministicProvider(cls *classifier.KeywordClassifier) *DeterministicProvider {
	return &DeterministicProvider{classifier: cls}
}

func (p *DeterministicProvider) Name() string          { return "stub" }
func (p *DeterministicProvider) ModelName() string     { return "deterministic-v1" }
func (p *DeterministicProvider) PromptVersion() string { return promptVersion }

func (p *DeterministicProvider) ClassifyTicket(_ context.Context, text string) (entity.ClassificationResult, error) {
	return p.classifier.Classify(text), nil
}

var draftGreetings = map[entity.Category]string{
	entity.CategoryBilling:  "Thank you for contacting us regarding your billing inquiry.",
	entity.CategoryTech:     "Thank you for reporting this technical issue.",
	entity.CategoryShipping: "Thank you for contacting us about your shipment.",
	entity.CategoryOther:    "Thank you for contacting our support team.",
}

// DraftReply builds the deterministic template reply: a category-specific
// greeting, the matched articles with snippets, and a closing.
func (p *DeterministicProvider) DraftReply(_ context.Context, _ entity.Ticket, matches []entity.ArticleMatch, category entity.Category) (string, error) {
	greeting, ok := draftGreetings[category]
	if !ok {
		greeting = draftGreetings[entity.CategoryOther]
	}

	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString(" I'm here to help you resolve this matter.\n\n")

	if len(matches) > 0 {
		b.WriteString("Based on our knowledge base, here are some relevant resources:\n\n")
		for i, match := range matches {
			fmt.Fprintf(&b, "%d. %s\n", i+1, match.Title)
			fmt.Fprintf(&b, "   %s\n\n", match.Snippet)
		}
		b.WriteString("Please review these resources. If they don't resolve your issue, ")
		b.WriteString("I'll escalate this to a human agent for further assistance.")
	} else {
		b.WriteString("I'm researching this issue and will provide you with a ")
		b.WriteString("detailed response shortly. If this is urgent, please ")
		b.WriteString("don't hesitate to contact us directly.")
	}

	b.WriteString("\n\nBest regards,\nSupport Team")
	return b.String(), nil
}
