package storage

import (
	"context"
	"sync"
	"time"

	"meetscribe/internal/meeting"
)

// MemoryStore is the in-process fallback backend used when neither Redis nor
// a data directory is configured, and by tests. Entries expire lazily on
// read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	job       meeting.Job
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-memory store. If ttl <= 0, the standard
// retention window is used.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = RetentionTTL
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (meeting.Job, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return meeting.Job{}, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return meeting.Job{}, ErrNotFound
	}
	return entry.job, nil
}

func (s *MemoryStore) Set(_ context.Context, job meeting.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[job.ID] = memoryEntry{
		job:       job,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
