package memory

import (
	"time"

	"ai-helpdesk-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SuggestionRepository keeps the latest suggestion per ticket in memory.
// Nothing is persisted; entries expire so the worker cannot grow without
// bound under sustained traffic.
type SuggestionRepository struct {
	cache *cache.Cache
}

func NewSuggestionRepository() *SuggestionRepository {
	// Default expiration of 24 hours, purge sweep every 10 minutes
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &SuggestionRepository{
		cache: c,
	}
}

func (r *SuggestionRepository) Save(suggestion *entity.AgentSuggestion) {
	r.cache.Set(suggestion.TicketId, suggestion, cache.DefaultExpiration)
}

func (r *SuggestionRepository) Get(ticketId string) (*entity.AgentSuggestion, bool) {
	if x, found := r.cache.Get(ticketId); found {
		return x.(*entity.AgentSuggestion), true
	}
	return nil, false
}

func (r *SuggestionRepository) Delete(ticketId string) {
	r.cache.Delete(ticketId)
}
