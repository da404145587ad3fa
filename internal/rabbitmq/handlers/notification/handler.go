package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks

type dispatcher interface {
	RouteAndDispatch(ctx context.Context, job model.NotificationJob) model.Result
}

type republisher interface {
	PublishRetry(msg queue.JobMessage, strategy retry.Strategy) error
	PublishDead(msg queue.JobMessage, strategy retry.Strategy) error
}

type operatorAlerter interface {
	Send(ctx context.Context, chatID, text string) error
}

const alertTimeout = 5 * time.Second

// Handler turns the dispatch result of a consumed job into a queue action.
type Handler struct {
	dispatcher  dispatcher
	queue       republisher
	maxAttempts int

	alerter     operatorAlerter
	alertChatID string
}

// NewHandler creates a handler. A job is dead-lettered after maxAttempts retryable deliveries.
func NewHandler(d dispatcher, q republisher, maxAttempts int) *Handler {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Handler{dispatcher: d, queue: q, maxAttempts: maxAttempts}
}

// WithOperatorAlerts reports every lost job to chatID through a.
func (h *Handler) WithOperatorAlerts(a operatorAlerter, chatID string) *Handler {
	h.alerter = a
	h.alertChatID = chatID
	return h
}

func (h *Handler) HandleMessage(ctx context.Context, msg queue.JobMessage, strategy retry.Strategy) model.Result {
	res := h.dispatcher.RouteAndDispatch(ctx, msg.NotificationJob)

	log := zlog.Logger.With().
		Str("job_id", msg.ID).
		Str("trace_id", msg.TraceID).
		Int("attempt", msg.Attempt).
		Str("result", res.String()).
		Logger()

	switch res {
	case model.ResultSuccess:
		log.Debug().Msg("job done")

	case model.ResultRetryable:
		if msg.Attempt+1 >= h.maxAttempts {
			log.Error().Bool("lost", true).Msg("job exhausted retries, moving to DLQ")
			h.deadLetter(msg, strategy)
			h.alertLost(ctx, msg, "retries exhausted")
			break
		}

		next := msg
		next.Attempt++
		if err := h.queue.PublishRetry(next, strategy); err != nil {
			log.Error().Err(err).Bool("lost", true).Msg("failed to schedule retry")
			h.alertLost(ctx, msg, "retry could not be scheduled: "+err.Error())
			break
		}

		log.Info().Msg("job scheduled for retry")

	case model.ResultPermanent:
		log.Error().Bool("lost", true).Msg("job failed permanently, moving to DLQ")
		h.deadLetter(msg, strategy)
		h.alertLost(ctx, msg, "permanent failure")
	}

	return res
}

func (h *Handler) deadLetter(msg queue.JobMessage, strategy retry.Strategy) {
	if err := h.queue.PublishDead(msg, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", msg.ID).Msg("failed to publish to DLQ")
	}
}

// alertLost is best-effort and bounded by alertTimeout.
func (h *Handler) alertLost(ctx context.Context, msg queue.JobMessage, reason string) {
	if h.alerter == nil {
		return
	}

	actx, cancel := context.WithTimeout(ctx, alertTimeout)
	defer cancel()

	text := fmt.Sprintf(
		"notification job lost: id=%s type=%s user=%s trace=%s attempt=%d: %s",
		msg.ID, msg.Type, msg.Recipient(), msg.TraceID, msg.Attempt, reason,
	)

	if err := h.alerter.Send(actx, h.alertChatID, text); err != nil {
		zlog.Logger.Warn().Err(err).Str("job_id", msg.ID).Msg("failed to send operator alert")
	}
}
