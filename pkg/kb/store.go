package kb

import (
	"ai-helpdesk-be/internal/entity"
)

// ArticleStore abstracts the knowledge-base corpus so the retriever can
// run against the built-in sample set or any pluggable loader.
// Implementations must be read-only after construction; All must return
// articles in a stable order because tie-breaking during ranking relies
// on corpus order.
type ArticleStore interface {
	All() []entity.Article
	Get(id string) (entity.Article, bool)
}

// StaticStore holds a fixed in-memory corpus.
type StaticStore struct {
	articles []entity.Article
	byId     map[string]entity.Article
}

var _ ArticleStore = &StaticStore{}

func NewStaticStore(articles []entity.Article) *StaticStore {
	byId := make(map[string]entity.Article, len(articles))
	for _, a := range articles {
		byId[a.Id] = a
	}
	return &StaticStore{
		articles: articles,
		byId:     byId,
	}
}

// All returns the corpus in load order. Callers must not mutate the slice.
func (s *StaticStore) All() []entity.Article {
	return s.articles
}

func (s *StaticStore) Get(id string) (entity.Article, bool) {
	a, ok := s.byId[id]
	return a, ok
}

func (s *StaticStore) Len() int {
	return len(s.articles)
}
