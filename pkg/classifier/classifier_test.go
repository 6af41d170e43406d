package classifier

import (
	"testing"

	"ai-helpdesk-be/internal/entity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantCategory   entity.Category
		wantConfidence float64
	}{
		{
			name:         "billing ticket",
			text:         "I was charged twice and want a refund",
			wantCategory: entity.CategoryBilling,
			// "charge" and "refund" hit, 12 billing keywords
			wantConfidence: 2.0/12.0 + 0.3,
		},
		{
			name:         "tech ticket",
			text:         "Getting a 500 error and stack trace when I login",
			wantCategory: entity.CategoryTech,
			// "error", "500", "stack trace", "login" hit, 13 tech keywords
			wantConfidence: 4.0/13.0 + 0.3,
		},
		{
			name:         "server error on login",
			text:         "I am getting a 500 error when I try to login",
			wantCategory: entity.CategoryTech,
			// "error", "500", "login" hit
			wantConfidence: 3.0/13.0 + 0.3,
		},
		{
			name:           "shipping ticket",
			text:           "My package tracking shows delayed delivery",
			wantCategory:   entity.CategoryShipping,
			wantConfidence: 4.0/11.0 + 0.3,
		},
		{
			name:           "multi-word keyword",
			text:           "The export button is not working",
			wantCategory:   entity.CategoryTech,
			wantConfidence: 1.0/13.0 + 0.3,
		},
		{
			name:           "no keyword match falls back to other",
			text:           "hello, just saying hi",
			wantCategory:   entity.CategoryOther,
			wantConfidence: 0.2,
		},
		{
			name:           "confidence capped",
			text:           "delivery shipment package tracking shipping address delayed lost",
			wantCategory:   entity.CategoryShipping,
			wantConfidence: 0.95,
		},
		{
			name:           "empty text",
			text:           "",
			wantCategory:   entity.CategoryOther,
			wantConfidence: 0.2,
		},
	}

	cls := NewKeywordClassifier(DefaultRules())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cls.Classify(tt.text)

			if got.PredictedCategory != tt.wantCategory {
				t.Errorf("PredictedCategory = %s, want %s", got.PredictedCategory, tt.wantCategory)
			}
			if diff := got.Confidence - tt.wantConfidence; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassifyTieBreakByDeclarationOrder(t *testing.T) {
	rules := RuleTable{
		{Category: entity.CategoryBilling, Keywords: []string{"alpha"}},
		{Category: entity.CategoryTech, Keywords: []string{"beta"}},
	}
	cls := NewKeywordClassifier(rules)

	// Both rules score 1/1 + 0.3; the first-declared category wins.
	got := cls.Classify("alpha beta")
	if got.PredictedCategory != entity.CategoryBilling {
		t.Errorf("PredictedCategory = %s, want %s", got.PredictedCategory, entity.CategoryBilling)
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	cls := NewKeywordClassifier(DefaultRules())

	inputs := []string{
		"",
		"refund",
		"refund invoice payment charge bill money cost price subscription credit debit account",
		"error bug crash broken not working stack trace exception 500 404 login password api database",
		"completely unrelated text about gardening",
	}
	for _, text := range inputs {
		got := cls.Classify(text)
		if got.Confidence < 0 || got.Confidence > 0.95 {
			t.Errorf("Classify(%q).Confidence = %v, out of [0, 0.95]", text, got.Confidence)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	cls := NewKeywordClassifier(DefaultRules())
	text := "refund for a delayed package with a 500 error"

	first := cls.Classify(text)
	for i := 0; i < 20; i++ {
		if got := cls.Classify(text); got != first {
			t.Fatalf("result changed between calls: %+v vs %+v", got, first)
		}
	}
}
