// Package redisstore implements the presence, ledger and live-channel primitives on Redis.
//
// Every mutation is one round trip: MULTI/EXEC for unconditional writes, Lua for
// conditional ones. Nothing here reads a value and writes it back from Go.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	aliveKeyPrefix   = "presence:alive:"
	sessionKeyPrefix = "presence:sessions:"
	scanBatch        = 100
)

// disconnectScript decrements the session counter and drops both keys once no session is left.
var disconnectScript = redis.NewScript(`
local n = redis.call('DECR', KEYS[1])
if n <= 0 then
	redis.call('DEL', KEYS[1], KEYS[2])
end
return n
`)

// reapScript deletes the session counter only while the liveness key is absent,
// so a reconnect racing the reap keeps its counter.
var reapScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 0 then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

func aliveKey(user string) string   { return aliveKeyPrefix + user }
func sessionKey(user string) string { return sessionKeyPrefix + user }

// PresenceStore keeps the liveness key and the session counter of each user.
type PresenceStore struct {
	rdb redis.Cmdable
}

// NewPresenceStore creates a presence store on rdb.
func NewPresenceStore(rdb redis.Cmdable) *PresenceStore {
	return &PresenceStore{rdb: rdb}
}

// Refresh sets the liveness key and extends an existing session counter.
func (s *PresenceStore) Refresh(ctx context.Context, user string, livenessTTL, sessionTTL time.Duration) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, aliveKey(user), 1, livenessTTL)
		pipe.Expire(ctx, sessionKey(user), sessionTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("refresh presence: %w", err)
	}

	return nil
}

// Connect increments the session counter and refreshes both TTLs in one transaction.
func (s *PresenceStore) Connect(ctx context.Context, user string, livenessTTL, sessionTTL time.Duration) (int64, error) {
	var incr *redis.IntCmd

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, sessionKey(user))
		pipe.Expire(ctx, sessionKey(user), sessionTTL)
		pipe.Set(ctx, aliveKey(user), 1, livenessTTL)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("track connect: %w", err)
	}

	return incr.Val(), nil
}

// Disconnect decrements the session counter, deleting both keys when it drops to zero or below.
func (s *PresenceStore) Disconnect(ctx context.Context, user string) (int64, error) {
	n, err := disconnectScript.Run(ctx, s.rdb, []string{sessionKey(user), aliveKey(user)}).Int64()
	if err != nil {
		return 0, fmt.Errorf("track disconnect: %w", err)
	}

	return n, nil
}

// Snapshot reads the session counter and the liveness key in one pipeline.
func (s *PresenceStore) Snapshot(ctx context.Context, user string) (int64, bool, error) {
	pipe := s.rdb.Pipeline()
	get := pipe.Get(ctx, sessionKey(user))
	exists := pipe.Exists(ctx, aliveKey(user))

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return 0, false, fmt.Errorf("read presence: %w", err)
	}

	sessions, err := get.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, false, fmt.Errorf("parse session counter: %w", err)
	}

	return sessions, exists.Val() > 0, nil
}

// ReapOrphan deletes the session counter if the liveness key has expired.
func (s *PresenceStore) ReapOrphan(ctx context.Context, user string) (bool, error) {
	n, err := reapScript.Run(ctx, s.rdb, []string{sessionKey(user), aliveKey(user)}).Int64()
	if err != nil {
		return false, fmt.Errorf("reap orphaned session: %w", err)
	}

	return n > 0, nil
}

// CountAlive scans all liveness keys. The result is approximate: keys may expire or appear mid-scan.
func (s *PresenceStore) CountAlive(ctx context.Context) (int64, error) {
	var (
		cursor uint64
		count  int64
	)

	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, aliveKeyPrefix+"*", scanBatch).Result()
		if err != nil {
			return 0, fmt.Errorf("scan presence keys: %w", err)
		}

		count += int64(len(keys))
		cursor = next

		if cursor == 0 {
			return count, nil
		}
	}
}
