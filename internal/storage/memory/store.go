// Package memory owns the ordered review collection for the process
// lifetime: seeded once at startup, appended and read concurrently after.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"review_radar/internal/adapters/observability"
	"review_radar/internal/domain"
)

// Store guards the collection with a single RWMutex. Coarse locking is the
// accepted discipline here: appends are rare relative to reads and the
// critical sections are slice operations only (scoring happens outside).
type Store struct {
	scorer domain.Scorer

	mu      sync.RWMutex
	reviews []domain.Review
	version uint64
}

func New(scorer domain.Scorer) *Store { return &Store{scorer: scorer} }

// Seed bulk-imports records in input order. Ids and timestamps come from
// the source data; callers validate rows before seeding.
func (s *Store) Seed(rs []domain.Review) {
	if len(rs) == 0 {
		return
	}
	s.mu.Lock()
	s.reviews = append(s.reviews, rs...)
	s.version++
	observability.SetStoreSize(len(s.reviews))
	s.mu.Unlock()
}

// All returns a copied snapshot in insertion order. Mutating the returned
// slice never touches stored state.
func (s *Store) All() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// Append validates the location, stamps a fresh id and the current UTC
// time, scores the body eagerly, and stores the finished record. A
// rejected append leaves the store untouched.
func (s *Store) Append(location, body string) (domain.Review, error) {
	if !domain.AllowedLocation(location) {
		return domain.Review{}, domain.ErrInvalidLocation
	}

	// Score before taking the lock; scoring is CPU-bound and must not
	// serialize readers.
	r := domain.Review{
		ID:        uuid.NewString(),
		Location:  location,
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Body:      body,
		Sentiment: s.scorer.Score(body),
	}

	s.mu.Lock()
	s.reviews = append(s.reviews, r)
	s.version++
	observability.SetStoreSize(len(s.reviews))
	s.mu.Unlock()
	return r, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}

// Version increments on every mutation. Query caching keys on it, so any
// append implicitly invalidates previously cached result sets.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
