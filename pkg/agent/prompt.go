package agent

import (
	"fmt"
	"strings"

	"ai-helpdesk-be/internal/entity"
)

// promptVersion is recorded in suggestion provenance so replies can be
// traced back to the prompt wording that produced them.
const promptVersion = "v1.0"

func buildClassificationPrompt(text string) string {
	return fmt.Sprintf(`Classify the following support ticket into one of these categories:
- billing: payment, refund, invoice, subscription issues
- tech: technical problems, errors, bugs, login issues
- shipping: delivery, package, tracking, shipping issues
- other: general inquiries, other topics

Ticket: %s

Respond with JSON format: {"category": "billing|tech|shipping|other", "confidence": 0.0-1.0}`, text)
}

func buildDraftPrompt(ticket entity.Ticket, matches []entity.ArticleMatch, category entity.Category) string {
	var articles strings.Builder
	if len(matches) > 0 {
		articles.WriteString("\nRelevant knowledge base articles:\n")
		for i, match := range matches {
			fmt.Fprintf(&articles, "%d. %s\n%s\n\n", i+1, match.Title, match.Snippet)
		}
	}

	return fmt.Sprintf(`You are a helpful customer support agent. Write a professional, empathetic response to this support ticket.

Ticket Title: %s
Ticket Description: %s
Category: %s
%s
Guidelines:
- Be helpful and professional
- Reference relevant articles if provided
- Offer next steps or escalation if needed
- Keep response concise but complete
- End with a professional closing`, ticket.Title, ticket.Description, category, articles.String())
}
