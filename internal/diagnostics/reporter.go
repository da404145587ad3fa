// Package diagnostics periodically logs operational counters.
package diagnostics

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=reporter.go -destination=../mocks/diagnostics/mock.go -package=mocks

type onlineCounter interface {
	OnlineCount(ctx context.Context) (int64, error)
}

// Reporter logs the approximate number of online users on a cron schedule.
type Reporter struct {
	counter onlineCounter
	timeout time.Duration
	c       *cron.Cron
}

// NewReporter accepts standard five-field specs and descriptors such as "@every 1m".
func NewReporter(counter onlineCounter, schedule string, timeout time.Duration) (*Reporter, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

	r := &Reporter{
		counter: counter,
		timeout: timeout,
		c:       cron.New(cron.WithParser(parser)),
	}

	if _, err := r.c.AddFunc(schedule, r.tick); err != nil {
		return nil, fmt.Errorf("invalid diagnostics schedule %q: %w", schedule, err)
	}

	return r, nil
}

func (r *Reporter) Start() {
	r.c.Start()
}

// Stop halts the schedule and waits for a running report to finish or ctx to end.
func (r *Reporter) Stop(ctx context.Context) {
	select {
	case <-r.c.Stop().Done():
	case <-ctx.Done():
	}
}

// Report counts online users once.
func (r *Reporter) Report(ctx context.Context) (int64, error) {
	n, err := r.counter.OnlineCount(ctx)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to count online users")
		return 0, err
	}

	zlog.Logger.Info().Int64("online", n).Msg("presence diagnostics")

	return n, nil
}

func (r *Reporter) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	_, _ = r.Report(ctx)
}
