package memory

import (
	"time"

	"ai-helpdesk-be/pkg/events"

	"github.com/patrickmn/go-cache"
)

// AuditRepository stores per-ticket audit trails in memory. Written only
// by the single audit consumer goroutine; reads get a copy so callers
// never observe a trail mid-append.
type AuditRepository struct {
	cache *cache.Cache
}

func NewAuditRepository() *AuditRepository {
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &AuditRepository{
		cache: c,
	}
}

func (r *AuditRepository) Append(event events.TriageEvent) {
	trail := r.Trail(event.TicketId)
	trail = append(trail, event)
	r.cache.Set(event.TicketId, trail, cache.DefaultExpiration)
}

func (r *AuditRepository) Trail(ticketId string) []events.TriageEvent {
	if x, found := r.cache.Get(ticketId); found {
		stored := x.([]events.TriageEvent)
		trail := make([]events.TriageEvent, len(stored))
		copy(trail, stored)
		return trail
	}
	return nil
}
