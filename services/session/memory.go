// File: services/session/memory.go
package session

import (
	"context"
	"sync"
	"time"

	"paguro/models"
)

type memoryEntry struct {
	weeks     []models.AvailabilityWeek
	expiresAt time.Time
}

// MemoryStore is a process-local Store for single-instance deployments
// and tests. All operations take the mutex, so check-read-write on a
// session is one critical section.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(ctx context.Context, sessionID string, weeks []models.AvailabilityWeek) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]models.AvailabilityWeek, len(weeks))
	copy(copied, weeks)
	s.entries[sessionID] = memoryEntry{
		weeks:     copied,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) ([]models.AvailabilityWeek, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(sessionID), nil
}

func (s *MemoryStore) Resolve(ctx context.Context, sessionID string, index int) (*models.AvailabilityWeek, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resolveIndex(s.getLocked(sessionID), index)
}

// getLocked evicts the entry if expired and returns the live result
// set, or nil. Callers must hold the mutex.
func (s *MemoryStore) getLocked(sessionID string) []models.AvailabilityWeek {
	entry, ok := s.entries[sessionID]
	if !ok {
		return nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil
	}
	return entry.weeks
}
