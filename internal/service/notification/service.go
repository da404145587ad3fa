// Package notification serves the domain delivery status of notifications and
// records acknowledgments from recipient devices.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/pkg/clock"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

const cachePrefix = "delivery:status:"

type notificationRepository interface {
	GetDeliveryStatus(ctx context.Context, id string) (model.DeliveryStatus, error)
	MarkDelivered(ctx context.Context, id, recipient string, at time.Time) error
	MarkRead(ctx context.Context, id, recipient string, at time.Time) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

type ledger interface {
	MarkProcessed(ctx context.Context, eventID string) error
}

// Service reads and updates delivery status.
//
// Only positive statuses are cached. delivered and read never go back to false,
// so a cached entry cannot become stale.
type Service struct {
	repo   notificationRepository
	cache  cache
	ledger ledger
	clock  clock.Clock
}

func NewService(repo notificationRepository, c cache, l ledger, clk clock.Clock) *Service {
	return &Service{repo: repo, cache: c, ledger: l, clock: clk}
}

// GetStatus returns whether id was delivered or read.
func (s *Service) GetStatus(ctx context.Context, strategy retry.Strategy, id string) (model.DeliveryStatus, error) {
	raw, err := s.cache.GetWithRetry(ctx, strategy, cachePrefix+id)
	switch {
	case err == nil:
		var status model.DeliveryStatus
		if jerr := json.Unmarshal([]byte(raw), &status); jerr == nil {
			return status, nil
		}

		zlog.Logger.Warn().Str("id", id).Msg("corrupt cached delivery status")
	case !errors.Is(err, redis.Nil):
		zlog.Logger.Warn().Err(err).Str("id", id).Msg("failed to get delivery status from cache")
	}

	status, err := s.repo.GetDeliveryStatus(ctx, id)
	if err != nil {
		return model.DeliveryStatus{}, fmt.Errorf("get delivery status: %w", err)
	}

	s.store(ctx, strategy, id, status)

	return status, nil
}

// Ack records that recipient's device received id.
func (s *Service) Ack(ctx context.Context, strategy retry.Strategy, id, recipient string) error {
	if err := s.repo.MarkDelivered(ctx, id, recipient, s.clock.Now()); err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}

	s.afterUpdate(ctx, strategy, id)

	return nil
}

// MarkRead records that recipient read id.
func (s *Service) MarkRead(ctx context.Context, strategy retry.Strategy, id, recipient string) error {
	if err := s.repo.MarkRead(ctx, id, recipient, s.clock.Now()); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}

	s.afterUpdate(ctx, strategy, id)

	return nil
}

// afterUpdate refreshes the cache from the database and closes the ledger entry.
func (s *Service) afterUpdate(ctx context.Context, strategy retry.Strategy, id string) {
	if status, err := s.repo.GetDeliveryStatus(ctx, id); err != nil {
		zlog.Logger.Warn().Err(err).Str("id", id).Msg("failed to reload delivery status")
	} else {
		s.store(ctx, strategy, id, status)
	}

	if err := s.ledger.MarkProcessed(ctx, id); err != nil {
		zlog.Logger.Warn().Err(err).Str("id", id).Msg("failed to mark event processed")
	}
}

func (s *Service) store(ctx context.Context, strategy retry.Strategy, id string, status model.DeliveryStatus) {
	if !status.Delivered && !status.Read {
		return
	}

	body, err := json.Marshal(status)
	if err != nil {
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, cachePrefix+id, string(body)); err != nil {
		zlog.Logger.Warn().Err(err).Str("id", id).Msg("failed to cache delivery status")
	}
}
