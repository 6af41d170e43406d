package service

import (
	"context"
	"testing"
	"time"

	"ai-helpdesk-be/internal/repository/memory"
	"ai-helpdesk-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditConsumeAndGetTrail(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := NewAuditService(pubSub, memory.NewAuditRepository(), nopLogger{})
	require.NoError(t, svc.Consume(ctx))

	publisher := events.NewWatermillPublisher(pubSub)
	sequence := []events.TriageAction{
		events.ActionTriageStarted,
		events.ActionAgentClassified,
		events.ActionKBRetrieved,
		events.ActionDraftGenerated,
		events.ActionAssignedToHuman,
		events.ActionTriageCompleted,
	}
	for _, action := range sequence {
		require.NoError(t, publisher.Publish(ctx, events.TriageEvent{
			TicketId: "ticket_9",
			TraceId:  "trace-9",
			Action:   action,
		}))
	}

	// The consumer runs on its own goroutine; wait for the full trail.
	assert.Eventually(t, func() bool {
		trail, err := svc.GetTrail(ctx, "ticket_9")
		return err == nil && len(trail.Events) == len(sequence)
	}, 3*time.Second, 10*time.Millisecond)

	trail, err := svc.GetTrail(ctx, "ticket_9")
	require.NoError(t, err)
	assert.Equal(t, "ticket_9", trail.TicketId)
	for i, action := range sequence {
		assert.Equal(t, string(action), trail.Events[i].Action)
		assert.Equal(t, "trace-9", trail.Events[i].TraceId)
		assert.Equal(t, events.ActorSystem, trail.Events[i].Actor)
	}
}

func TestAuditGetTrailUnknownTicket(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	svc := NewAuditService(pubSub, memory.NewAuditRepository(), nopLogger{})

	trail, err := svc.GetTrail(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "nope", trail.TicketId)
	assert.Empty(t, trail.Events)
}
