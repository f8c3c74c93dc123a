package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps in-progress drafts in memory, keyed by draft ID. Drafts
// are session-scoped form state, so there is nothing to persist; idle
// drafts are evicted after the TTL.
type Store struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*Draft
	ttl    time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		drafts: make(map[uuid.UUID]*Draft),
		ttl:    ttl,
	}
}

func (s *Store) Put(draft *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = draft
}

func (s *Store) Get(id uuid.UUID) (*Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[id]
	return draft, ok
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

// StartJanitor evicts expired drafts until ctx is done.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.evictExpired(time.Now())
			}
		}
	}()
}

func (s *Store) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, draft := range s.drafts {
		if now.Sub(draft.LastUpdated()) > s.ttl {
			delete(s.drafts, id)
		}
	}
}
