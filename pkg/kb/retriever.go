package kb

import (
	"sort"

	"ai-helpdesk-be/internal/entity"
)

const snippetMarker = "..."

// Config encapsulates retrieval parameters.
type Config struct {
	// MinScore is the minimum relevance threshold; articles scoring at or
	// below it are dropped.
	MinScore float64
	// TopK caps the number of returned matches.
	TopK int
	// SnippetLength bounds the excerpt taken from the article body.
	SnippetLength int
}

// DefaultConfig returns the default retrieval configuration.
func DefaultConfig() Config {
	return Config{
		MinScore:      0.1,
		TopK:          3,
		SnippetLength: 150,
	}
}

// Retriever ranks corpus articles against a query. Read-only over its
// store, so any number of requests may retrieve concurrently.
type Retriever struct {
	store  ArticleStore
	scorer *Scorer
	config Config
}

func NewRetriever(store ArticleStore, scorer *Scorer, config Config) *Retriever {
	return &Retriever{
		store:  store,
		scorer: scorer,
		config: config,
	}
}

// Retrieve scores every article against the query, drops anything at or
// below MinScore, and returns the TopK survivors ordered by descending
// score. The sort is stable: equal scores keep corpus order. Total on
// well-formed input; an empty corpus yields an empty result.
func (r *Retriever) Retrieve(query string, hint entity.Category) []entity.ArticleMatch {
	matches := make([]entity.ArticleMatch, 0, r.config.TopK)

	for _, article := range r.store.All() {
		score := r.scorer.Score(query, article, hint)
		if score <= r.config.MinScore {
			continue
		}
		matches = append(matches, entity.ArticleMatch{
			Id:      article.Id,
			Title:   article.Title,
			Score:   score,
			Snippet: r.snippet(article.Body),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > r.config.TopK {
		matches = matches[:r.config.TopK]
	}

	return matches
}

func (r *Retriever) snippet(body string) string {
	runes := []rune(body)
	if len(runes) <= r.config.SnippetLength {
		return body
	}
	return string(runes[:r.config.SnippetLength]) + snippetMarker
}
