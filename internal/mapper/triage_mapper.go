package mapper

import (
	"ai-helpdesk-be/internal/dto"
	"ai-helpdesk-be/internal/entity"
	"ai-helpdesk-be/pkg/events"
)

type TriageMapper struct{}

func NewTriageMapper() *TriageMapper {
	return &TriageMapper{}
}

func (m *TriageMapper) TicketToEntity(t dto.TicketDTO) entity.Ticket {
	// Unknown or empty categories fall back to "other"
	category, _ := entity.ParseCategory(t.Category)
	return entity.Ticket{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		Category:    category,
	}
}

func (m *TriageMapper) SuggestionToDTO(s *entity.AgentSuggestion) dto.SuggestionDTO {
	if s == nil {
		return dto.SuggestionDTO{}
	}
	return dto.SuggestionDTO{
		PredictedCategory: string(s.PredictedCategory),
		ArticleIds:        s.ArticleIds,
		DraftReply:        s.DraftReply,
		Confidence:        s.Confidence,
		AutoClose:         s.AutoClose,
		ModelInfo: dto.ModelInfoDTO{
			Provider:      s.ModelInfo.Provider,
			Model:         s.ModelInfo.Model,
			PromptVersion: s.ModelInfo.PromptVersion,
			LatencyMs:     s.ModelInfo.LatencyMs,
		},
	}
}

func (m *TriageMapper) ArticleToDTO(a entity.Article) dto.ArticleResponse {
	return dto.ArticleResponse{
		Id:       a.Id,
		Title:    a.Title,
		Body:     a.Body,
		Tags:     a.Tags,
		Category: string(a.Category),
	}
}

func (m *TriageMapper) MatchesToDTO(matches []entity.ArticleMatch) []dto.ArticleMatchDTO {
	out := make([]dto.ArticleMatchDTO, len(matches))
	for i, match := range matches {
		out[i] = dto.ArticleMatchDTO{
			Id:      match.Id,
			Title:   match.Title,
			Score:   match.Score,
			Snippet: match.Snippet,
		}
	}
	return out
}

func (m *TriageMapper) TrailToDTO(ticketId string, trail []events.TriageEvent) dto.AuditTrailResponse {
	eventsDTO := make([]dto.AuditEventResponse, len(trail))
	for i, evt := range trail {
		eventsDTO[i] = dto.AuditEventResponse{
			Action:     string(evt.Action),
			Actor:      evt.Actor,
			TraceId:    evt.TraceId,
			Meta:       evt.Meta,
			OccurredAt: evt.OccurredAt,
		}
	}
	return dto.AuditTrailResponse{
		TicketId: ticketId,
		Events:   eventsDTO,
	}
}
