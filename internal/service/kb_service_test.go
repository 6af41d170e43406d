package service

import (
	"context"
	"testing"

	"ai-helpdesk-be/internal/pkg/serverutils"
	"ai-helpdesk-be/pkg/kb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKBService() IKBService {
	store := kb.NewStaticStore(kb.DefaultCorpus())
	retriever := kb.NewRetriever(store, kb.NewScorer(kb.DefaultWeights()), kb.DefaultConfig())
	return NewKBService(store, retriever)
}

func TestKBGetAll(t *testing.T) {
	svc := newTestKBService()

	articles, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, articles, len(kb.DefaultCorpus()))
	assert.Equal(t, "kb_001", articles[0].Id)
}

func TestKBSearch(t *testing.T) {
	svc := newTestKBService()

	res, err := svc.Search(context.Background(), "refund policy", "billing")
	require.NoError(t, err)
	assert.Equal(t, "refund policy", res.Query)
	require.NotEmpty(t, res.Matches)
	assert.Equal(t, "kb_005", res.Matches[0].Id)
	for _, match := range res.Matches {
		assert.NotEmpty(t, match.Snippet)
		assert.Greater(t, match.Score, 0.1)
	}
}

func TestKBSearchValidation(t *testing.T) {
	svc := newTestKBService()

	_, err := svc.Search(context.Background(), "", "")
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)

	_, err = svc.Search(context.Background(), "refund", "complaints")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
}
