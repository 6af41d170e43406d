package service

import (
	"context"

	"ai-helpdesk-be/internal/dto"
	"ai-helpdesk-be/internal/entity"
	"ai-helpdesk-be/internal/mapper"
	"ai-helpdesk-be/internal/pkg/serverutils"
	"ai-helpdesk-be/pkg/kb"
)

type IKBService interface {
	GetAll(ctx context.Context) ([]dto.ArticleResponse, error)
	Search(ctx context.Context, query, category string) (*dto.SearchArticlesResponse, error)
}

// kbService exposes the read-only corpus and direct retrieval. Corpus
// management (create/update/delete) is intentionally absent.
type kbService struct {
	store     kb.ArticleStore
	retriever *kb.Retriever
	mapper    *mapper.TriageMapper
}

func NewKBService(store kb.ArticleStore, retriever *kb.Retriever) IKBService {
	return &kbService{
		store:     store,
		retriever: retriever,
		mapper:    mapper.NewTriageMapper(),
	}
}

func (s *kbService) GetAll(_ context.Context) ([]dto.ArticleResponse, error) {
	articles := s.store.All()
	out := make([]dto.ArticleResponse, len(articles))
	for i, a := range articles {
		out[i] = s.mapper.ArticleToDTO(a)
	}
	return out, nil
}

func (s *kbService) Search(_ context.Context, query, category string) (*dto.SearchArticlesResponse, error) {
	if query == "" {
		return nil, serverutils.NewApiError(400, "query is required")
	}

	var hint entity.Category
	if category != "" {
		parsed, ok := entity.ParseCategory(category)
		if !ok {
			return nil, serverutils.NewApiError(400, "unknown category: "+category)
		}
		hint = parsed
	}

	matches := s.retriever.Retrieve(query, hint)
	return &dto.SearchArticlesResponse{
		Query:   query,
		Matches: s.mapper.MatchesToDTO(matches),
	}, nil
}
