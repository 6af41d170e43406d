package kb

import (
	"strings"
	"testing"

	"ai-helpdesk-be/internal/entity"
)

func defaultRetriever(articles []entity.Article) *Retriever {
	return NewRetriever(NewStaticStore(articles), NewScorer(DefaultWeights()), DefaultConfig())
}

func TestRetrieveRanking(t *testing.T) {
	retriever := defaultRetriever(DefaultCorpus())

	// "billing" hits kb_008 in title, body and tags, kb_001 in body and
	// tags, kb_005 in tags only.
	matches := retriever.Retrieve("billing", "")

	wantOrder := []string{"kb_008", "kb_001", "kb_005"}
	if len(matches) != len(wantOrder) {
		t.Fatalf("got %d matches, want %d", len(matches), len(wantOrder))
	}
	for i, want := range wantOrder {
		if matches[i].Id != want {
			t.Errorf("matches[%d].Id = %s, want %s", i, matches[i].Id, want)
		}
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not sorted descending at %d: %v > %v", i, matches[i].Score, matches[i-1].Score)
		}
	}
}

func TestRetrieveCategoryHintBoostsScore(t *testing.T) {
	retriever := defaultRetriever(DefaultCorpus())

	plain := retriever.Retrieve("billing", "")
	hinted := retriever.Retrieve("billing", entity.CategoryBilling)

	if len(plain) == 0 || len(hinted) == 0 {
		t.Fatal("expected matches for both queries")
	}
	if hinted[0].Score <= plain[0].Score {
		t.Errorf("hint did not raise top score: %v <= %v", hinted[0].Score, plain[0].Score)
	}
}

func TestRetrieveTopKAndStableTies(t *testing.T) {
	retriever := defaultRetriever(DefaultCorpus())

	// "account" matches four articles; kb_007 and kb_008 tie and must
	// keep corpus order, with kb_008 falling off the top 3.
	matches := retriever.Retrieve("account", "")

	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	wantOrder := []string{"kb_001", "kb_004", "kb_007"}
	for i, want := range wantOrder {
		if matches[i].Id != want {
			t.Errorf("matches[%d].Id = %s, want %s", i, matches[i].Id, want)
		}
	}
}

func TestRetrieveDoubleChargeQuery(t *testing.T) {
	retriever := defaultRetriever(DefaultCorpus())

	matches := retriever.Retrieve("my payment was charged twice", entity.CategoryBilling)
	if len(matches) == 0 {
		t.Fatal("expected billing matches, got none")
	}

	// Only billing articles survive; tech and shipping score zero here.
	billingIds := map[string]bool{"kb_001": true, "kb_005": true, "kb_008": true}
	for _, m := range matches {
		if !billingIds[m.Id] {
			t.Errorf("non-billing article %s ranked for billing query", m.Id)
		}
	}
	if matches[0].Id != "kb_001" {
		t.Errorf("top match = %s, want kb_001", matches[0].Id)
	}
}

func TestRetrieveDropsLowScores(t *testing.T) {
	retriever := defaultRetriever(DefaultCorpus())

	matches := retriever.Retrieve("zzz qqq xxx", "")
	if len(matches) != 0 {
		t.Errorf("got %d matches for nonsense query, want 0", len(matches))
	}
}

func TestRetrieveEmptyQuery(t *testing.T) {
	retriever := defaultRetriever(DefaultCorpus())

	if matches := retriever.Retrieve("", entity.CategoryBilling); len(matches) != 0 {
		t.Errorf("got %d matches for empty query, want 0", len(matches))
	}
}

func TestRetrieveEmptyCorpus(t *testing.T) {
	retriever := defaultRetriever(nil)

	matches := retriever.Retrieve("refund", entity.CategoryBilling)
	if matches == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches from empty corpus, want 0", len(matches))
	}
}

func TestSnippetTruncation(t *testing.T) {
	longBody := "refund " + strings.Repeat("detail ", 40) // well over 150 chars
	shortBody := "refund steps here"

	store := NewStaticStore([]entity.Article{
		{Id: "long", Title: "refund", Body: longBody, Tags: nil, Category: entity.CategoryBilling},
		{Id: "short", Title: "refund", Body: shortBody, Tags: nil, Category: entity.CategoryBilling},
	})
	retriever := NewRetriever(store, NewScorer(DefaultWeights()), DefaultConfig())

	matches := retriever.Retrieve("refund", "")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}

	byId := map[string]entity.ArticleMatch{}
	for _, m := range matches {
		byId[m.Id] = m
	}

	long := byId["long"]
	if !strings.HasSuffix(long.Snippet, "...") {
		t.Errorf("long snippet missing marker: %q", long.Snippet)
	}
	if got := len([]rune(long.Snippet)); got != 150+len("...") {
		t.Errorf("long snippet length = %d, want %d", got, 150+len("..."))
	}

	short := byId["short"]
	if short.Snippet != shortBody {
		t.Errorf("short snippet = %q, want untouched body", short.Snippet)
	}
}
