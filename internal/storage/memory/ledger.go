package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aliskhannn/delivery-orchestrator/internal/pkg/clock"
)

type hashValue struct {
	fields    map[string]string
	expiresAt time.Time
}

// LedgerStore keeps ledger hashes in memory.
type LedgerStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries map[string]hashValue
}

// NewLedgerStore creates an empty store reading time from clk.
func NewLedgerStore(clk clock.Clock) *LedgerStore {
	return &LedgerStore{clock: clk, entries: make(map[string]hashValue)}
}

// Put merges fields into the hash at key and resets its TTL.
func (s *LedgerStore) Put(_ context.Context, key string, fields map[string]string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	v, ok := s.entries[key]
	if !ok || !now.Before(v.expiresAt) {
		v = hashValue{fields: make(map[string]string)}
	}

	for k, f := range fields {
		v.fields[k] = f
	}
	v.expiresAt = now.Add(ttl)
	s.entries[key] = v

	return nil
}

// Get returns a copy of the hash at key, or an empty map when it is absent or expired.
func (s *LedgerStore) Get(_ context.Context, key string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries[key]
	if !ok || !s.clock.Now().Before(v.expiresAt) {
		delete(s.entries, key)
		return map[string]string{}, nil
	}

	out := make(map[string]string, len(v.fields))
	for k, f := range v.fields {
		out[k] = f
	}

	return out, nil
}
