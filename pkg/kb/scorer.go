package kb

import (
	"strings"

	"ai-helpdesk-be/internal/entity"
)

// Weights controls the per-field contribution of the relevance score.
// Title hits outweigh tag hits outweigh body hits so an exact-title match
// beats a loose body mention.
type Weights struct {
	Title         float64
	Body          float64
	Tags          float64
	CategoryBonus float64
}

// DefaultWeights returns the tuned defaults.
func DefaultWeights() Weights {
	return Weights{
		Title:         3.0,
		Body:          1.0,
		Tags:          2.0,
		CategoryBonus: 2.0,
	}
}

// Scorer computes the relevance of one article against a query.
// Stateless and safe for concurrent use.
type Scorer struct {
	weights Weights
}

func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score returns a non-negative relevance score for the article.
// Matching is set intersection over lowercase whitespace tokens, so
// repeated words in either text do not inflate the score. The raw sum is
// divided by the query word count; an empty query scores 0.
func (s *Scorer) Score(query string, article entity.Article, hint entity.Category) float64 {
	queryWords := tokenize(query)
	if len(queryWords) == 0 {
		return 0
	}

	score := float64(intersect(queryWords, tokenize(article.Title))) * s.weights.Title
	score += float64(intersect(queryWords, tokenize(article.Body))) * s.weights.Body
	score += float64(intersect(queryWords, tokenize(strings.Join(article.Tags, " ")))) * s.weights.Tags

	if hint != "" && hint == article.Category {
		score += s.weights.CategoryBonus
	}

	return score / float64(len(queryWords))
}

func tokenize(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func intersect(a, b map[string]struct{}) int {
	// Iterate over the smaller set
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for w := range a {
		if _, ok := b[w]; ok {
			count++
		}
	}
	return count
}
