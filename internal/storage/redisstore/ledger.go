package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const ledgerKeyPrefix = "ledger:event:"

// LedgerStore keeps one hash per event id.
type LedgerStore struct {
	rdb redis.Cmdable
}

// NewLedgerStore creates a ledger store on rdb.
func NewLedgerStore(rdb redis.Cmdable) *LedgerStore {
	return &LedgerStore{rdb: rdb}
}

// Put merges fields into the event hash and resets its TTL atomically.
func (s *LedgerStore) Put(ctx context.Context, eventID string, fields map[string]string, ttl time.Duration) error {
	values := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		values = append(values, k, v)
	}

	key := ledgerKeyPrefix + eventID
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, values...)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("write ledger entry: %w", err)
	}

	return nil
}

// Get returns the event hash; an absent entry is an empty map.
func (s *LedgerStore) Get(ctx context.Context, eventID string) (map[string]string, error) {
	fields, err := s.rdb.HGetAll(ctx, ledgerKeyPrefix+eventID).Result()
	if err != nil {
		return nil, fmt.Errorf("read ledger entry: %w", err)
	}

	return fields, nil
}
