// Package job accepts notification jobs from producers over HTTP and enqueues them.
package job

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/api/dto"
	"github.com/aliskhannn/delivery-orchestrator/internal/api/respond"
	"github.com/aliskhannn/delivery-orchestrator/internal/config"
	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/pkg/clock"
	"github.com/aliskhannn/delivery-orchestrator/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/job/mock.go -package=mocks

type jobPublisher interface {
	Publish(msg queue.JobMessage, strategy retry.Strategy) error
}

type Handler struct {
	publisher jobPublisher
	validator *validator.Validate
	cfg       *config.Config
	clock     clock.Clock
}

func NewHandler(p jobPublisher, v *validator.Validate, cfg *config.Config, clk clock.Clock) *Handler {
	return &Handler{publisher: p, validator: v, cfg: cfg, clock: clk}
}

// Create validates a job and publishes it to the job queue.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateJobRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if _, ok := req.Type.Routing(); !ok {
		zlog.Logger.Warn().Str("type", string(req.Type)).Msg("unknown job type")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("unknown type %q", req.Type))
		return
	}

	job := model.NotificationJob{
		ID:        req.ID,
		TraceID:   req.TraceID,
		Type:      req.Type,
		Target:    model.Target{User: req.Target.User},
		Payload:   req.Payload,
		Delivery:  model.Delivery{TTLSeconds: req.Delivery.TTLSeconds, Priority: model.Priority(req.Delivery.Priority)},
		CreatedAt: req.CreatedAt,
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.TraceID == "" {
		job.TraceID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = h.clock.Now()
	}

	if err := h.publisher.Publish(queue.JobMessage{NotificationJob: job}, h.cfg.Retry); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", job.ID).Msg("failed to enqueue job")
		respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("queue unavailable"))
		return
	}

	zlog.Logger.Info().Str("job_id", job.ID).Str("trace_id", job.TraceID).Str("type", string(job.Type)).Msg("job enqueued")

	respond.Accepted(c.Writer, dto.CreateJobResponse{ID: job.ID, TraceID: job.TraceID})
}
