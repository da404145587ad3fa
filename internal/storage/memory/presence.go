// Package memory provides in-process stores with TTL semantics matching the Redis adapters.
// They hold no state across restarts and are meant for tests and local runs.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aliskhannn/delivery-orchestrator/internal/pkg/clock"
)

type ttlValue struct {
	n         int64
	expiresAt time.Time
}

// PresenceStore keeps presence keys in maps guarded by a single mutex, so every operation is atomic.
type PresenceStore struct {
	mu       sync.Mutex
	clock    clock.Clock
	alive    map[string]time.Time
	sessions map[string]ttlValue
}

// NewPresenceStore creates an empty store reading time from clk.
func NewPresenceStore(clk clock.Clock) *PresenceStore {
	return &PresenceStore{
		clock:    clk,
		alive:    make(map[string]time.Time),
		sessions: make(map[string]ttlValue),
	}
}

// expire drops keys past their deadline. Callers hold mu.
func (s *PresenceStore) expire(user string, now time.Time) {
	if at, ok := s.alive[user]; ok && !now.Before(at) {
		delete(s.alive, user)
	}

	if v, ok := s.sessions[user]; ok && !now.Before(v.expiresAt) {
		delete(s.sessions, user)
	}
}

func (s *PresenceStore) Refresh(_ context.Context, user string, livenessTTL, sessionTTL time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.expire(user, now)

	s.alive[user] = now.Add(livenessTTL)
	if v, ok := s.sessions[user]; ok {
		v.expiresAt = now.Add(sessionTTL)
		s.sessions[user] = v
	}

	return nil
}

func (s *PresenceStore) Connect(_ context.Context, user string, livenessTTL, sessionTTL time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.expire(user, now)

	v := s.sessions[user]
	v.n++
	v.expiresAt = now.Add(sessionTTL)
	s.sessions[user] = v
	s.alive[user] = now.Add(livenessTTL)

	return v.n, nil
}

func (s *PresenceStore) Disconnect(_ context.Context, user string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.expire(user, now)

	v := s.sessions[user]
	v.n--
	if v.n <= 0 {
		delete(s.sessions, user)
		delete(s.alive, user)
		return v.n, nil
	}

	s.sessions[user] = v

	return v.n, nil
}

func (s *PresenceStore) Snapshot(_ context.Context, user string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expire(user, s.clock.Now())
	_, alive := s.alive[user]

	return s.sessions[user].n, alive, nil
}

func (s *PresenceStore) ReapOrphan(_ context.Context, user string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expire(user, s.clock.Now())
	if _, alive := s.alive[user]; alive {
		return false, nil
	}

	if _, ok := s.sessions[user]; !ok {
		return false, nil
	}

	delete(s.sessions, user)

	return true, nil
}

func (s *PresenceStore) CountAlive(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var n int64
	for _, at := range s.alive {
		if now.Before(at) {
			n++
		}
	}

	return n, nil
}

// HasSession reports whether a session key exists for user.
func (s *PresenceStore) HasSession(user string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expire(user, s.clock.Now())
	_, ok := s.sessions[user]

	return ok
}
