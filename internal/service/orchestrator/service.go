// Package orchestrator decides through which channel a notification job reaches its recipient.
//
// Online users get the live channel only. Offline users get a wake-up push, guarded by
// push_sent_at for content activity. Security alerts always go through both.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/pkg/clock"
	"github.com/aliskhannn/delivery-orchestrator/internal/service/push"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/orchestrator/mock.go -package=mocks

const reasonAlreadyPushed = "push already sent for entity"

type presenceReader interface {
	IsOnline(ctx context.Context, user string) bool
}

type eventLedger interface {
	MarkDispatched(ctx context.Context, eventID string, channel model.Channel) error
	MarkSkipped(ctx context.Context, eventID, reason string) error
	Processed(ctx context.Context, eventID string) bool
}

type liveEmitter interface {
	EmitChatUpdate(ctx context.Context, user string, msg model.LiveMessage) (bool, error)
	EmitNotification(ctx context.Context, user string, msg model.LiveMessage) (bool, error)
}

type pusher interface {
	Push(ctx context.Context, user string, msg model.PushMessage, opts model.PushOptions) (model.FanoutReport, error)
}

type pushGuard interface {
	PushAlreadySent(ctx context.Context, recipient string, entity model.EntityRef) (bool, error)
	MarkPushSent(ctx context.Context, recipient string, entity model.EntityRef, at time.Time) error
}

type emailLookup interface {
	GetEmail(ctx context.Context, user string) (string, error)
}

type mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Options holds push rendering defaults.
type Options struct {
	DefaultTTL time.Duration
	Icon       string
}

// Service routes jobs to channels.
type Service struct {
	presence presenceReader
	ledger   eventLedger
	live     liveEmitter
	push     pusher
	guard    pushGuard
	clock    clock.Clock
	opts     Options

	emails emailLookup
	mailer mailer
}

// NewService creates an orchestrator.
func NewService(
	presence presenceReader,
	ledger eventLedger,
	live liveEmitter,
	p pusher,
	guard pushGuard,
	clk clock.Clock,
	opts Options,
) *Service {
	return &Service{
		presence: presence,
		ledger:   ledger,
		live:     live,
		push:     p,
		guard:    guard,
		clock:    clk,
		opts:     opts,
	}
}

// WithEmailFallback enables mailing security alerts that reached no device.
func (s *Service) WithEmailFallback(emails emailLookup, m mailer) *Service {
	s.emails = emails
	s.mailer = m
	return s
}

// Route delivers job and returns its classification. The error carries the cause
// of a non-success result for logging; the result alone decides what the queue does.
func (s *Service) Route(ctx context.Context, job model.NotificationJob) (model.Result, error) {
	recipient := job.Recipient()
	if recipient == "" {
		return model.ResultPermanent, fmt.Errorf("job %s has no recipient", job.ID)
	}

	routing, ok := job.Type.Routing()
	if !ok {
		return model.ResultPermanent, fmt.Errorf("job %s has unknown type %q", job.ID, job.Type)
	}

	log := zlog.Logger.With().
		Str("job_id", job.ID).
		Str("trace_id", job.TraceID).
		Str("type", string(job.Type)).
		Str("user", recipient).
		Logger()

	if routing.Critical {
		return s.routeCritical(ctx, log, job, routing)
	}

	if s.ledger.Processed(ctx, job.EventKey()) {
		log.Info().Msg("event already processed by recipient, skipping")
		return model.ResultSuccess, nil
	}

	if s.presence.IsOnline(ctx, recipient) {
		return s.routeOnline(ctx, log, job, routing)
	}

	return s.routeOffline(ctx, log, job, routing)
}

// routeCritical attempts both channels. The live result is ignored.
func (s *Service) routeCritical(ctx context.Context, log zerolog.Logger, job model.NotificationJob, routing model.Routing) (model.Result, error) {
	recipient := job.Recipient()

	s.markDispatched(ctx, log, job, model.ChannelLive)
	if delivered, err := s.emit(ctx, job, routing); err != nil {
		log.Warn().Err(err).Msg("live emit failed for critical job")
	} else {
		log.Debug().Bool("delivered", delivered).Msg("live emit for critical job")
	}

	s.markDispatched(ctx, log, job, model.ChannelPush)
	report, err := s.push.Push(ctx, recipient, push.MessageFor(job, s.opts.Icon), push.OptionsFor(job, s.opts.DefaultTTL))
	if err != nil {
		log.Error().Err(err).Msg("push fan-out failed for critical job")
		report = model.FanoutReport{Result: model.ResultRetryable}
	}

	if report.Succeeded == 0 && s.sendEmail(ctx, log, job) {
		return model.ResultSuccess, nil
	}

	if err != nil {
		return model.ResultRetryable, err
	}

	log.Info().Int("attempted", report.Attempted).Int("succeeded", report.Succeeded).Msg("critical job dispatched")
	return report.Result, nil
}

// routeOnline uses the live channel only. A miss is retried, never pushed.
func (s *Service) routeOnline(ctx context.Context, log zerolog.Logger, job model.NotificationJob, routing model.Routing) (model.Result, error) {
	s.markDispatched(ctx, log, job, model.ChannelLive)

	delivered, err := s.emit(ctx, job, routing)
	if err != nil {
		return model.ResultRetryable, fmt.Errorf("live emit: %w", err)
	}

	if !delivered {
		return model.ResultRetryable, fmt.Errorf("user %s online but no live connection received job %s", job.Recipient(), job.ID)
	}

	log.Info().Str("channel", string(model.ChannelLive)).Msg("job delivered")
	return model.ResultSuccess, nil
}

func (s *Service) routeOffline(ctx context.Context, log zerolog.Logger, job model.NotificationJob, routing model.Routing) (model.Result, error) {
	recipient := job.Recipient()
	entity, hasEntity := job.Payload.Entity()

	if routing.ContentGuard && hasEntity {
		sent, err := s.guard.PushAlreadySent(ctx, recipient, entity)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("entity", entity.Key()).Msg("push guard check failed, sending anyway")
		case sent:
			if err := s.ledger.MarkSkipped(ctx, job.EventKey(), reasonAlreadyPushed); err != nil {
				log.Warn().Err(err).Msg("failed to record skipped event")
			}

			log.Info().Str("entity", entity.Key()).Msg("push already sent for entity, skipping")
			return model.ResultSuccess, nil
		}
	}

	s.markDispatched(ctx, log, job, model.ChannelPush)

	report, err := s.push.Push(ctx, recipient, push.MessageFor(job, s.opts.Icon), push.OptionsFor(job, s.opts.DefaultTTL))
	if err != nil {
		return model.ResultRetryable, fmt.Errorf("push fan-out: %w", err)
	}

	if hasEntity && report.Succeeded > 0 {
		if err := s.guard.MarkPushSent(ctx, recipient, entity, s.clock.Now()); err != nil {
			log.Warn().Err(err).Str("entity", entity.Key()).Msg("failed to update push_sent_at")
		}
	}

	log.Info().
		Str("channel", string(model.ChannelPush)).
		Int("attempted", report.Attempted).
		Int("succeeded", report.Succeeded).
		Int("deactivated", report.Deactivated).
		Str("result", report.Result.String()).
		Msg("job pushed")

	return report.Result, nil
}

func (s *Service) emit(ctx context.Context, job model.NotificationJob, routing model.Routing) (bool, error) {
	msg := model.LiveMessage{
		EventID:   job.EventKey(),
		Type:      job.Type,
		Payload:   job.Payload,
		CreatedAt: job.CreatedAt,
	}

	if routing.Live == model.LiveEventChatUpdate {
		return s.live.EmitChatUpdate(ctx, job.Recipient(), msg)
	}

	return s.live.EmitNotification(ctx, job.Recipient(), msg)
}

func (s *Service) markDispatched(ctx context.Context, log zerolog.Logger, job model.NotificationJob, channel model.Channel) {
	if err := s.ledger.MarkDispatched(ctx, job.EventKey(), channel); err != nil {
		log.Warn().Err(err).Str("channel", string(channel)).Msg("failed to record dispatch")
	}
}

// sendEmail reports whether the alert was mailed.
func (s *Service) sendEmail(ctx context.Context, log zerolog.Logger, job model.NotificationJob) bool {
	if s.mailer == nil || s.emails == nil {
		return false
	}

	to, err := s.emails.GetEmail(ctx, job.Recipient())
	if err != nil || to == "" {
		log.Warn().Err(err).Msg("no email address for security alert fallback")
		return false
	}

	msg := push.MessageFor(job, "")
	if err := s.mailer.Send(ctx, to, msg.Title, msg.Body); err != nil {
		log.Error().Err(err).Msg("security alert email failed")
		return false
	}

	log.Info().Msg("security alert mailed")
	return true
}
