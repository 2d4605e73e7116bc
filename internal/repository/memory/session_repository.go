package memory

import (
	"time"

	"regboard-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds the per-session dashboard stores. Idle sessions
// expire after the given TTL; eviction closes the store so its realtime
// subscriptions are released rather than leaked.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := cache.New(ttl, 10*time.Minute)
	c.OnEvicted(func(_ string, v interface{}) {
		if s, ok := v.(*store.Store); ok {
			s.Close()
		}
	})
	return &SessionRepository{
		cache: c,
	}
}

// Save stores the session and refreshes its expiry.
func (r *SessionRepository) Save(sessionID string, s *store.Store) {
	r.cache.Set(sessionID, s, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Store, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Store), true
	}
	return nil, false
}

// Delete evicts the session immediately, closing its store.
func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
