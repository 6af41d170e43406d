package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-helpdesk-be/internal/config"
	"ai-helpdesk-be/internal/dto"
	"ai-helpdesk-be/internal/entity"
	"ai-helpdesk-be/internal/mapper"
	"ai-helpdesk-be/internal/pkg/logger"
	"ai-helpdesk-be/internal/repository/memory"
	"ai-helpdesk-be/pkg/agent"
	"ai-helpdesk-be/pkg/events"
	"ai-helpdesk-be/pkg/kb"

	"github.com/google/uuid"
)

// ErrPipeline marks an unrecoverable failure inside classification or
// retrieval. No partial suggestion is returned past it.
var ErrPipeline = errors.New("triage pipeline failed")

// finalConfidenceCap is the ceiling for the aggregated suggestion
// confidence: the agent is never fully certain without human review.
const finalConfidenceCap = 0.98

// articleBoost is added per retrieved article (up to maxBoostedArticle)
// to reward corroborating knowledge-base evidence.
const (
	articleBoost      = 0.05
	maxBoostedArticle = 3
)

type ITriageService interface {
	Triage(ctx context.Context, req *dto.TriageRequest) (*dto.TriageResponse, error)
	GetSuggestion(ctx context.Context, ticketId string) (*dto.SuggestionDTO, error)
}

// triageService sequences the agentic workflow: classify, retrieve,
// draft, aggregate. All request-scoped state lives on the stack, so any
// number of triage calls may run concurrently.
type triageService struct {
	provider       agent.Provider
	fallback       *agent.DeterministicProvider
	retriever      *kb.Retriever
	suggestionRepo *memory.SuggestionRepository
	auditPublisher events.AuditPublisher
	mapper         *mapper.TriageMapper
	sysLogger      logger.ILogger
	triageCfg      config.TriageConfig
}

func NewTriageService(
	provider agent.Provider,
	fallback *agent.DeterministicProvider,
	retriever *kb.Retriever,
	suggestionRepo *memory.SuggestionRepository,
	auditPublisher events.AuditPublisher,
	sysLogger logger.ILogger,
	triageCfg config.TriageConfig,
) ITriageService {
	return &triageService{
		provider:       provider,
		fallback:       fallback,
		retriever:      retriever,
		suggestionRepo: suggestionRepo,
		auditPublisher: auditPublisher,
		mapper:         mapper.NewTriageMapper(),
		sysLogger:      sysLogger,
		triageCfg:      triageCfg,
	}
}

func (s *triageService) Triage(ctx context.Context, req *dto.TriageRequest) (*dto.TriageResponse, error) {
	start := time.Now()

	traceId := req.TraceId
	if traceId == "" {
		traceId = uuid.NewString()
	}

	ticket := s.mapper.TicketToEntity(req.Ticket)

	s.sysLogger.Info("triage", "Created plan", map[string]interface{}{
		"ticket_id": ticket.Id,
		"trace_id":  traceId,
		"steps":     []string{"classify_category", "retrieve_kb_articles", "draft_response", "calculate_confidence"},
	})
	s.audit(ctx, ticket.Id, traceId, events.ActionTriageStarted, map[string]interface{}{
		"ticketTitle": ticket.Title,
	})

	// Step 1: Classify
	classification, err := s.provider.ClassifyTicket(ctx, ticket.Text())
	if err != nil {
		s.audit(ctx, ticket.Id, traceId, events.ActionTriageFailed, map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: classification: %v", ErrPipeline, err)
	}
	s.sysLogger.Info("triage", "Ticket classified", map[string]interface{}{
		"ticket_id":  ticket.Id,
		"category":   classification.PredictedCategory,
		"confidence": classification.Confidence,
	})
	s.audit(ctx, ticket.Id, traceId, events.ActionAgentClassified, map[string]interface{}{
		"category":   classification.PredictedCategory,
		"confidence": classification.Confidence,
	})

	// Step 2: Retrieve KB articles, biased by the predicted category
	matches := s.retriever.Retrieve(ticket.Text(), classification.PredictedCategory)
	articleIds := make([]string, len(matches))
	for i, match := range matches {
		articleIds[i] = match.Id
	}
	s.audit(ctx, ticket.Id, traceId, events.ActionKBRetrieved, map[string]interface{}{
		"articleIds": articleIds,
		"count":      len(matches),
	})

	// Step 3: Draft the reply. The external provider already falls back
	// internally; this guard covers any Provider that surfaces a
	// generation error instead.
	draft, err := s.provider.DraftReply(ctx, ticket, matches, classification.PredictedCategory)
	if err != nil {
		s.sysLogger.Warn("triage", "Draft failed, substituting deterministic reply", map[string]interface{}{
			"ticket_id": ticket.Id,
			"error":     err.Error(),
		})
		draft, _ = s.fallback.DraftReply(ctx, ticket, matches, classification.PredictedCategory)
	}
	s.audit(ctx, ticket.Id, traceId, events.ActionDraftGenerated, map[string]interface{}{
		"chars": len(draft),
	})

	// Step 4: Aggregate confidence and decide disposition
	confidence := aggregateConfidence(classification.Confidence, len(matches))
	autoClose := s.shouldAutoClose(classification.PredictedCategory, confidence)

	disposition := events.ActionAssignedToHuman
	if autoClose {
		disposition = events.ActionAutoClosed
	}
	s.audit(ctx, ticket.Id, traceId, disposition, map[string]interface{}{
		"confidence": confidence,
		"threshold":  s.threshold(classification.PredictedCategory),
	})

	suggestion := &entity.AgentSuggestion{
		TicketId:          ticket.Id,
		PredictedCategory: classification.PredictedCategory,
		ArticleIds:        articleIds,
		DraftReply:        draft,
		Confidence:        confidence,
		AutoClose:         autoClose,
		ModelInfo: entity.ModelInfo{
			Provider:      s.provider.Name(),
			Model:         s.provider.ModelName(),
			PromptVersion: s.provider.PromptVersion(),
			LatencyMs:     time.Since(start).Milliseconds(),
		},
	}
	s.suggestionRepo.Save(suggestion)

	s.audit(ctx, ticket.Id, traceId, events.ActionTriageCompleted, map[string]interface{}{
		"confidence": confidence,
		"autoClose":  autoClose,
	})

	return &dto.TriageResponse{
		Suggestion:       s.mapper.SuggestionToDTO(suggestion),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

func (s *triageService) GetSuggestion(_ context.Context, ticketId string) (*dto.SuggestionDTO, error) {
	suggestion, found := s.suggestionRepo.Get(ticketId)
	if !found {
		return nil, nil
	}
	res := s.mapper.SuggestionToDTO(suggestion)
	return &res, nil
}

// aggregateConfidence rewards corroborating articles without ever
// reaching full certainty.
func aggregateConfidence(classificationConfidence float64, articleCount int) float64 {
	boosted := articleCount
	if boosted > maxBoostedArticle {
		boosted = maxBoostedArticle
	}
	confidence := classificationConfidence + articleBoost*float64(boosted)
	if confidence > finalConfidenceCap {
		confidence = finalConfidenceCap
	}
	return confidence
}

func (s *triageService) threshold(category entity.Category) float64 {
	if t, ok := s.triageCfg.CategoryThresholds[string(category)]; ok {
		return t
	}
	return s.triageCfg.DefaultThreshold
}

func (s *triageService) shouldAutoClose(category entity.Category, confidence float64) bool {
	return s.triageCfg.AutoCloseEnabled && confidence >= s.threshold(category)
}

// audit publishes best-effort: a full event bus must not fail a triage.
func (s *triageService) audit(ctx context.Context, ticketId, traceId string, action events.TriageAction, meta map[string]interface{}) {
	evt := events.TriageEvent{
		TicketId:   ticketId,
		TraceId:    traceId,
		Actor:      events.ActorSystem,
		Action:     action,
		Meta:       meta,
		OccurredAt: time.Now(),
	}
	if err := s.auditPublisher.Publish(ctx, evt); err != nil {
		s.sysLogger.Warn("triage", "Failed to publish audit event", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}
