package classifier

import (
	"strings"

	"ai-helpdesk-be/internal/entity"
)

const (
	// matchBias lifts any category with at least one keyword hit above
	// the no-match fallback confidence.
	matchBias = 0.3
	// maxConfidence caps classifier confidence.
	maxConfidence = 0.95
	// fallbackConfidence is returned when no keyword matches at all.
	fallbackConfidence = 0.2
)

// KeywordClassifier maps free text to a category using a fixed keyword
// table. Deterministic and total: it never fails and repeated calls on
// the same input return the same result. Safe for concurrent use.
type KeywordClassifier struct {
	rules RuleTable
}

func NewKeywordClassifier(rules RuleTable) *KeywordClassifier {
	return &KeywordClassifier{rules: rules}
}

// Classify counts, per category, how many of its keywords occur as
// substrings of the lowercased input. Categories with at least one hit
// score matches/len(keywords) + 0.3; the highest raw score wins, with
// rule declaration order breaking ties. Confidence is capped at 0.95.
// Zero hits across the table yields CategoryOther at exactly 0.2.
func (c *KeywordClassifier) Classify(text string) entity.ClassificationResult {
	lowered := strings.ToLower(text)

	best := entity.CategoryOther
	bestScore := 0.0
	found := false

	for _, rule := range c.rules {
		matches := 0
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		raw := float64(matches)/float64(len(rule.Keywords)) + matchBias
		// Strictly-greater keeps the first-declared category on ties.
		if !found || raw > bestScore {
			best = rule.Category
			bestScore = raw
			found = true
		}
	}

	if !found {
		return entity.ClassificationResult{
			PredictedCategory: entity.CategoryOther,
			Confidence:        fallbackConfidence,
		}
	}

	if bestScore > maxConfidence {
		bestScore = maxConfidence
	}

	return entity.ClassificationResult{
		PredictedCategory: best,
		Confidence:        bestScore,
	}
}
