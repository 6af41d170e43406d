package agent

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"ai-helpdesk-be/internal/entity"
	"ai-helpdesk-be/pkg/llm"
)

// fakeLLM returns canned responses or a fixed error.
type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeLLM) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func newModelProvider(backend llm.LLMProvider) *ExternalModelProvider {
	return NewExternalModelProvider(
		backend,
		newStub(),
		log.New(io.Discard, "", 0),
		"gemini",
		"gemini-pro",
		5*time.Second,
	)
}

func TestModelClassifyTicket(t *testing.T) {
	tests := []struct {
		name           string
		response       string
		wantCategory   entity.Category
		wantConfidence float64
	}{
		{
			name:           "plain json",
			response:       `{"category": "billing", "confidence": 0.9}`,
			wantCategory:   entity.CategoryBilling,
			wantConfidence: 0.9,
		},
		{
			name:           "fenced json",
			response:       "```json\n{\"category\": \"tech\", \"confidence\": 0.8}\n```",
			wantCategory:   entity.CategoryTech,
			wantConfidence: 0.8,
		},
		{
			name:           "confidence clamped high",
			response:       `{"category": "shipping", "confidence": 1.7}`,
			wantCategory:   entity.CategoryShipping,
			wantConfidence: 1.0,
		},
		{
			name:           "confidence clamped low",
			response:       `{"category": "other", "confidence": -0.3}`,
			wantCategory:   entity.CategoryOther,
			wantConfidence: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newModelProvider(&fakeLLM{response: tt.response})

			result, err := provider.ClassifyTicket(context.Background(), "some ticket text")
			if err != nil {
				t.Fatalf("ClassifyTicket returned error: %v", err)
			}
			if result.PredictedCategory != tt.wantCategory {
				t.Errorf("PredictedCategory = %s, want %s", result.PredictedCategory, tt.wantCategory)
			}
			if result.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", result.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestModelClassifyFallsBackToStub(t *testing.T) {
	tests := []struct {
		name    string
		backend *fakeLLM
	}{
		{name: "transport error", backend: &fakeLLM{err: errors.New("connection refused")}},
		{name: "malformed json", backend: &fakeLLM{response: "I think it is billing"}},
		{name: "unknown category", backend: &fakeLLM{response: `{"category": "complaints", "confidence": 0.9}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newModelProvider(tt.backend)

			result, err := provider.ClassifyTicket(context.Background(), "I was charged twice and want a refund")
			if err != nil {
				t.Fatalf("fallback should absorb the failure, got: %v", err)
			}
			// Stub keyword result for this text.
			if result.PredictedCategory != entity.CategoryBilling {
				t.Errorf("PredictedCategory = %s, want %s", result.PredictedCategory, entity.CategoryBilling)
			}
		})
	}
}

func TestModelDraftReply(t *testing.T) {
	provider := newModelProvider(&fakeLLM{response: "  Hello, here is your answer.  "})

	draft, err := provider.DraftReply(context.Background(), entity.Ticket{Id: "t1"}, nil, entity.CategoryBilling)
	if err != nil {
		t.Fatalf("DraftReply returned error: %v", err)
	}
	if draft != "Hello, here is your answer." {
		t.Errorf("draft = %q, want trimmed model output", draft)
	}
}

func TestModelDraftFallsBackToStub(t *testing.T) {
	for name, backend := range map[string]*fakeLLM{
		"transport error": {err: errors.New("timeout")},
		"empty draft":     {response: "   "},
	} {
		t.Run(name, func(t *testing.T) {
			provider := newModelProvider(backend)

			draft, err := provider.DraftReply(context.Background(), entity.Ticket{Id: "t1"}, nil, entity.CategoryTech)
			if err != nil {
				t.Fatalf("fallback should absorb the failure, got: %v", err)
			}
			if !strings.Contains(draft, "Thank you for reporting this technical issue.") {
				t.Errorf("draft is not the deterministic template:\n%s", draft)
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripCodeFences(tt.in); got != tt.want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProviderMetadata(t *testing.T) {
	provider := newModelProvider(&fakeLLM{})
	if provider.Name() != "gemini" {
		t.Errorf("Name() = %s, want gemini", provider.Name())
	}
	if provider.ModelName() != "gemini-pro" {
		t.Errorf("ModelName() = %s, want gemini-pro", provider.ModelName())
	}
	if provider.PromptVersion() == "" {
		t.Error("PromptVersion() is empty")
	}

	stub := newStub()
	if stub.Name() != "stub" || stub.ModelName() != "deterministic-v1" {
		t.Errorf("stub metadata = %s/%s", stub.Name(), stub.ModelName())
	}
	if stub.PromptVersion() != provider.PromptVersion() {
		t.Error("prompt version differs between providers")
	}
}
