// Package presence exposes presence tracking to the live-connection gateway.
package presence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/api/dto"
	"github.com/aliskhannn/delivery-orchestrator/internal/api/respond"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/presence/mock.go -package=mocks

type presenceService interface {
	MarkOnline(ctx context.Context, user string)
	TrackConnect(ctx context.Context, user string) error
	TrackDisconnect(ctx context.Context, user string) error
	IsOnline(ctx context.Context, user string) bool
	OnlineCount(ctx context.Context) (int64, error)
}

type Handler struct {
	service   presenceService
	validator *validator.Validate
}

func NewHandler(s presenceService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Heartbeat refreshes the caller's liveness. It always answers 200.
func (h *Handler) Heartbeat(c *ginext.Context) {
	req, ok := h.decode(c)
	if !ok {
		return
	}

	h.service.MarkOnline(c.Request.Context(), req.User)
	respond.OK(c.Writer, "ok")
}

// Connect registers a new live connection.
func (h *Handler) Connect(c *ginext.Context) {
	req, ok := h.decode(c)
	if !ok {
		return
	}

	if err := h.service.TrackConnect(c.Request.Context(), req.User); err != nil {
		respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("presence unavailable"))
		return
	}

	respond.OK(c.Writer, "connected")
}

// Disconnect unregisters a live connection.
func (h *Handler) Disconnect(c *ginext.Context) {
	req, ok := h.decode(c)
	if !ok {
		return
	}

	if err := h.service.TrackDisconnect(c.Request.Context(), req.User); err != nil {
		respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("presence unavailable"))
		return
	}

	respond.OK(c.Writer, "disconnected")
}

func (h *Handler) GetUser(c *ginext.Context) {
	user := strings.TrimSpace(c.Param("user"))
	if user == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user"))
		return
	}

	respond.OK(c.Writer, dto.PresenceResponse{User: user, Online: h.service.IsOnline(c.Request.Context(), user)})
}

// OnlineCount returns an approximate count for diagnostics.
func (h *Handler) OnlineCount(c *ginext.Context) {
	n, err := h.service.OnlineCount(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to count online users")
		respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("presence unavailable"))
		return
	}

	respond.OK(c.Writer, dto.OnlineCountResponse{Online: n})
}

func (h *Handler) decode(c *ginext.Context) (dto.PresenceRequest, bool) {
	var req dto.PresenceRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return req, false
	}

	return req, true
}
