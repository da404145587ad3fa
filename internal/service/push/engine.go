// Package push fans a wake-up message out to every active subscription of a user.
package push

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

//go:generate mockgen -source=engine.go -destination=../../mocks/service/push/mock.go -package=mocks

type subscriptionRepository interface {
	GetActiveByUser(ctx context.Context, user string) ([]model.PushSubscription, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type transport interface {
	Send(ctx context.Context, sub model.PushSubscription, payload []byte, opts model.PushOptions) error
}

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeRetryable
	outcomePermanent
)

// Engine sends one message to all subscriptions of a recipient and classifies the aggregate.
type Engine struct {
	subs        subscriptionRepository
	transport   transport
	maxParallel int
}

// NewEngine creates an engine. maxParallel bounds concurrent sends per fan-out; zero or less means unbounded.
func NewEngine(subs subscriptionRepository, t transport, maxParallel int) *Engine {
	return &Engine{subs: subs, transport: t, maxParallel: maxParallel}
}

// Push delivers msg to every active subscription of user.
// Only a failed subscription lookup is returned as an error; per-subscription
// failures are classified into the report.
func (e *Engine) Push(ctx context.Context, user string, msg model.PushMessage, opts model.PushOptions) (model.FanoutReport, error) {
	subs, err := e.subs.GetActiveByUser(ctx, user)
	if err != nil {
		return model.FanoutReport{}, fmt.Errorf("get active subscriptions: %w", err)
	}

	if len(subs) == 0 {
		return model.FanoutReport{Result: model.ResultSuccess}, nil
	}

	payload, err := Render(msg)
	if err != nil {
		return model.FanoutReport{}, fmt.Errorf("render payload: %w", err)
	}

	var (
		mu     sync.Mutex
		report = model.FanoutReport{Attempted: len(subs)}
	)

	var g errgroup.Group
	if e.maxParallel > 0 {
		g.SetLimit(e.maxParallel)
	}

	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			out, deactivated := e.sendOne(ctx, sub, payload, opts)

			mu.Lock()
			defer mu.Unlock()

			switch out {
			case outcomeSuccess:
				report.Succeeded++
			case outcomeRetryable:
				report.Retryable++
			case outcomePermanent:
				report.Permanent++
			}
			if deactivated {
				report.Deactivated++
			}

			return nil
		})
	}

	// Branches never return an error; Wait is the join over all sends.
	_ = g.Wait()

	report.Result = aggregate(report)

	return report, nil
}

func (e *Engine) sendOne(ctx context.Context, sub model.PushSubscription, payload []byte, opts model.PushOptions) (outcome, bool) {
	err := e.transport.Send(ctx, sub, payload, opts)
	if err == nil {
		return outcomeSuccess, false
	}

	var pe *model.PushError
	if !errors.As(err, &pe) {
		zlog.Logger.Error().Err(err).Str("subscription_id", sub.ID.String()).Msg("push failed with unclassified error")
		return outcomePermanent, false
	}

	switch {
	case pe.Gone():
		if derr := e.subs.Deactivate(ctx, sub.ID); derr != nil {
			zlog.Logger.Error().Err(derr).Str("subscription_id", sub.ID.String()).Msg("failed to deactivate subscription")
			return outcomePermanent, false
		}

		zlog.Logger.Info().Str("subscription_id", sub.ID.String()).Int("status", pe.StatusCode).Msg("subscription gone, deactivated")
		return outcomePermanent, true
	case pe.Retryable():
		zlog.Logger.Warn().Err(err).Str("subscription_id", sub.ID.String()).Msg("push failed, retryable")
		return outcomeRetryable, false
	default:
		zlog.Logger.Warn().Err(err).Str("subscription_id", sub.ID.String()).Msg("push rejected")
		return outcomePermanent, false
	}
}

// aggregate is RETRYABLE only when every branch failed as retryable.
func aggregate(r model.FanoutReport) model.Result {
	if r.Attempted > 0 && r.Retryable == r.Attempted {
		return model.ResultRetryable
	}

	return model.ResultSuccess
}
