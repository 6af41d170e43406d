package service

import (
	"context"
	"encoding/json"

	"ai-helpdesk-be/internal/dto"
	"ai-helpdesk-be/internal/mapper"
	"ai-helpdesk-be/internal/pkg/logger"
	"ai-helpdesk-be/internal/repository/memory"
	"ai-helpdesk-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAuditService interface {
	Consume(ctx context.Context) error
	GetTrail(ctx context.Context, ticketId string) (*dto.AuditTrailResponse, error)
}

// auditService consumes triage audit events off the in-process bus and
// keeps per-ticket trails in memory.
type auditService struct {
	pubSub    *gochannel.GoChannel
	auditRepo *memory.AuditRepository
	mapper    *mapper.TriageMapper
	sysLogger logger.ILogger
}

func NewAuditService(
	pubSub *gochannel.GoChannel,
	auditRepo *memory.AuditRepository,
	sysLogger logger.ILogger,
) IAuditService {
	return &auditService{
		pubSub:    pubSub,
		auditRepo: auditRepo,
		mapper:    mapper.NewTriageMapper(),
		sysLogger: sysLogger,
	}
}

func (s *auditService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, events.TopicTriageAudit)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *auditService) processMessage(msg *message.Message) {
	var event events.TriageEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.sysLogger.Error("audit", "Failed to unmarshal audit event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	s.auditRepo.Append(event)
	msg.Ack()
}

func (s *auditService) GetTrail(_ context.Context, ticketId string) (*dto.AuditTrailResponse, error) {
	trail := s.auditRepo.Trail(ticketId)
	res := s.mapper.TrailToDTO(ticketId, trail)
	return &res, nil
}
