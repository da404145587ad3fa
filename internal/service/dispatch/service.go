// Package dispatch is the entry point the job queue calls for every notification job.
package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/pkg/clock"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/dispatch/mock.go -package=mocks

type router interface {
	Route(ctx context.Context, job model.NotificationJob) (model.Result, error)
}

// Service drops stale jobs, routes the rest and turns any failure into a queue decision.
type Service struct {
	router     router
	clock      clock.Clock
	jobTimeout time.Duration
}

// NewService creates a dispatch facade. A zero jobTimeout disables the per-job deadline.
func NewService(r router, clk clock.Clock, jobTimeout time.Duration) *Service {
	return &Service{router: r, clock: clk, jobTimeout: jobTimeout}
}

// RouteAndDispatch never returns an error: the result tells the queue whether to ack, retry or dead-letter.
func (s *Service) RouteAndDispatch(ctx context.Context, job model.NotificationJob) (result model.Result) {
	if job.TraceID == "" {
		job.TraceID = uuid.NewString()
	}

	log := zlog.Logger.With().Str("job_id", job.ID).Str("trace_id", job.TraceID).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("routing panicked, job will be retried")
			result = model.ResultRetryable
		}
	}()

	if job.Expired(s.clock.Now()) {
		log.Info().
			Int("ttl_seconds", job.Delivery.TTLSeconds).
			Time("created_at", job.CreatedAt).
			Msg("job expired, discarding")
		return model.ResultSuccess
	}

	if s.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.jobTimeout)
		defer cancel()
	}

	res, err := s.router.Route(ctx, job)
	if err != nil {
		if res == model.ResultSuccess {
			res = model.ResultRetryable
		}

		log.Warn().Err(err).Str("result", res.String()).Msg("job not delivered")
	}

	return res
}
