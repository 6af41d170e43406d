package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// AuditPublisher emits triage audit events onto the event bus.
type AuditPublisher interface {
	Publish(ctx context.Context, event TriageEvent) error
}

type watermillPublisher struct {
	pubSub *gochannel.GoChannel
}

func NewWatermillPublisher(pubSub *gochannel.GoChannel) AuditPublisher {
	return &watermillPublisher{pubSub: pubSub}
}

func (p *watermillPublisher) Publish(_ context.Context, event TriageEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	if event.Actor == "" {
		event.Actor = ActorSystem
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.pubSub.Publish(TopicTriageAudit, message.NewMessage(watermill.NewUUID(), payload))
}
