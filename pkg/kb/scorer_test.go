package kb

import (
	"testing"

	"ai-helpdesk-be/internal/entity"
)

func TestScore(t *testing.T) {
	article := entity.Article{
		Id:       "kb_x",
		Title:    "refund policy",
		Body:     "payment options and refund steps",
		Tags:     []string{"billing", "refund"},
		Category: entity.CategoryBilling,
	}

	tests := []struct {
		name  string
		query string
		hint  entity.Category
		want  float64
	}{
		{
			name:  "title body and tag hits",
			query: "payment refund",
			hint:  "",
			// title 1*3 + body 2*1 + tags 1*2 = 7, over 2 query words
			want: 3.5,
		},
		{
			name:  "category hint adds bonus",
			query: "payment refund",
			hint:  entity.CategoryBilling,
			want:  4.5,
		},
		{
			name:  "mismatched hint adds nothing",
			query: "payment refund",
			hint:  entity.CategoryTech,
			want:  3.5,
		},
		{
			name:  "repeated query words count once",
			query: "refund refund",
			hint:  "",
			// set semantics: same as the single word "refund"
			want: 6.0,
		},
		{
			name:  "case insensitive",
			query: "REFUND",
			hint:  "",
			want:  6.0,
		},
		{
			name:  "no overlap",
			query: "unrelated words",
			hint:  "",
			want:  0,
		},
		{
			name:  "empty query",
			query: "",
			hint:  entity.CategoryBilling,
			want:  0,
		},
	}

	scorer := NewScorer(DefaultWeights())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.query, article, tt.hint)
			if got != tt.want {
				t.Errorf("Score(%q, hint=%q) = %v, want %v", tt.query, tt.hint, got, tt.want)
			}
		})
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	for _, article := range DefaultCorpus() {
		first := scorer.Score("refund for my subscription charge", article, entity.CategoryBilling)
		for i := 0; i < 10; i++ {
			got := scorer.Score("refund for my subscription charge", article, entity.CategoryBilling)
			if got != first {
				t.Fatalf("score for %s changed between calls: %v vs %v", article.Id, first, got)
			}
		}
	}
}
