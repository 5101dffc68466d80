package memory

import (
	"time"

	"college-buddy-be/pkg/advisor/state"

	"github.com/patrickmn/go-cache"
)

// ConversationRepository keeps per-session conversation state in process
// memory. Pending clarifications are transient by nature, so losing them on
// restart only means the student re-asks their question.
type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	// Default expiration of 1 hour, purge expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Save(cs *state.ConversationState) {
	r.cache.Set(cs.SessionID, cs, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(sessionID string) (*state.ConversationState, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*state.ConversationState), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
