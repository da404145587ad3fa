// Package ledger records the technical dispatch state of events so that a redelivered
// job can be recognized within a short window. It is not the record of delivery:
// delivered and read live in the relational store.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/pkg/clock"
)

const (
	fieldStatus    = "status"
	fieldChannel   = "channel"
	fieldReason    = "reason"
	fieldTimestamp = "ts"
)

// Store persists ledger hashes. Put merges fields and resets the TTL in one atomic step.
type Store interface {
	Put(ctx context.Context, eventID string, fields map[string]string, ttl time.Duration) error
	Get(ctx context.Context, eventID string) (map[string]string, error)
}

// Service writes and reads ledger entries.
type Service struct {
	store Store
	clock clock.Clock
	ttl   time.Duration
}

// NewService creates a ledger with entries living for ttl.
func NewService(store Store, clk clock.Clock, ttl time.Duration) *Service {
	return &Service{store: store, clock: clk, ttl: ttl}
}

// MarkDispatched records that channel is about to be attempted for eventID.
func (s *Service) MarkDispatched(ctx context.Context, eventID string, channel model.Channel) error {
	return s.put(ctx, eventID, map[string]string{
		fieldStatus:  string(model.LedgerDispatched),
		fieldChannel: string(channel),
	})
}

// MarkProcessed records that the recipient side acknowledged eventID.
func (s *Service) MarkProcessed(ctx context.Context, eventID string) error {
	return s.put(ctx, eventID, map[string]string{
		fieldStatus: string(model.LedgerProcessed),
	})
}

// MarkSkipped records that eventID was not sent, with the reason.
func (s *Service) MarkSkipped(ctx context.Context, eventID, reason string) error {
	return s.put(ctx, eventID, map[string]string{
		fieldStatus: string(model.LedgerSkipped),
		fieldReason: reason,
	})
}

// Get returns the entry for eventID, or nil when none is stored.
func (s *Service) Get(ctx context.Context, eventID string) (*model.LedgerEntry, error) {
	fields, err := s.store.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}

	if len(fields) == 0 {
		return nil, nil
	}

	status, ok := model.ParseLedgerStatus(fields[fieldStatus])
	if !ok {
		return nil, fmt.Errorf("get ledger entry: unknown status %q", fields[fieldStatus])
	}

	entry := &model.LedgerEntry{
		EventID: eventID,
		Status:  status,
		Channel: model.Channel(fields[fieldChannel]),
		Reason:  fields[fieldReason],
	}

	if ts, err := time.Parse(time.RFC3339Nano, fields[fieldTimestamp]); err == nil {
		entry.UpdatedAt = ts
	}

	return entry, nil
}

// Processed reports whether eventID was already acknowledged. Read errors count as "no".
func (s *Service) Processed(ctx context.Context, eventID string) bool {
	entry, err := s.Get(ctx, eventID)
	if err != nil || entry == nil {
		return false
	}

	return entry.Status == model.LedgerProcessed
}

func (s *Service) put(ctx context.Context, eventID string, fields map[string]string) error {
	fields[fieldTimestamp] = s.clock.Now().UTC().Format(time.RFC3339Nano)

	if err := s.store.Put(ctx, eventID, fields, s.ttl); err != nil {
		return fmt.Errorf("write ledger entry: %w", err)
	}

	return nil
}
