package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/yigit/unibrowser/internal/pkg/apperrors"
)

// Store keeps sessions between requests
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryStore keeps encoded sessions in a map. Expired entries are dropped
// when read and swept on every save.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore creates an in-process store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns a decoded copy of the session
func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	entry, ok := m.items[id]
	if ok && !entry.expires.After(m.now()) {
		delete(m.items, id)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}

	var s Session
	if err := json.Unmarshal(entry.data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSessionStore, err)
	}
	return &s, nil
}

// Save stores an encoded copy and restarts its TTL
func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSessionStore, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, entry := range m.items {
		if !entry.expires.After(now) {
			delete(m.items, id)
		}
	}
	m.items[s.ID] = memoryEntry{data: data, expires: now.Add(m.ttl)}
	return nil
}

// Delete removes a session; unknown ids are ignored
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.items, id)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored sessions, expired ones included
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
