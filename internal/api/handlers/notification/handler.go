package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/api/dto"
	"github.com/aliskhannn/delivery-orchestrator/internal/api/respond"
	"github.com/aliskhannn/delivery-orchestrator/internal/config"
	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/repository/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

type notificationService interface {
	GetStatus(ctx context.Context, strategy retry.Strategy, id string) (model.DeliveryStatus, error)
	Ack(ctx context.Context, strategy retry.Strategy, id, recipient string) error
	MarkRead(ctx context.Context, strategy retry.Strategy, id, recipient string) error
}

type Handler struct {
	service   notificationService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s notificationService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// GetStatus answers whether a message or event was delivered or read.
func (h *Handler) GetStatus(c *ginext.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return
	}

	status, err := h.service.GetStatus(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to get delivery status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// Ack records that the recipient's device received the message.
func (h *Handler) Ack(c *ginext.Context) {
	h.update(c, "acknowledged", h.service.Ack)
}

// MarkRead records that the recipient read the message.
func (h *Handler) MarkRead(c *ginext.Context) {
	h.update(c, "read", h.service.MarkRead)
}

type updateFunc func(ctx context.Context, strategy retry.Strategy, id, recipient string) error

func (h *Handler) update(c *ginext.Context, done string, fn updateFunc) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return
	}

	var req dto.RecipientRequest
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

	if err := fn(c.Request.Context(), h.cfg.Retry, id, req.Recipient); err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id).Str("recipient", req.Recipient).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id).Msgf("failed to mark notification %s", done)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification "+done)
}
