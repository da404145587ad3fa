// Package presence derives whether a user is reachable through a live connection.
//
// Presence is two keys per user: a short liveness key refreshed by heartbeats and a
// session counter moved by connects and disconnects. A user is online only when both
// say so. Every store failure degrades to "offline", which costs an extra wake-up push
// instead of a missed notification.
package presence

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/pkg/clock"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/presence/mock.go -package=mocks

// Store is the key space behind presence. Every method must be a single atomic round trip.
type Store interface {
	// Refresh sets the liveness key and extends the session key if it exists.
	Refresh(ctx context.Context, user string, livenessTTL, sessionTTL time.Duration) error
	// Connect increments the session counter, sets its TTL and the liveness key in one step.
	Connect(ctx context.Context, user string, livenessTTL, sessionTTL time.Duration) (int64, error)
	// Disconnect decrements the session counter and deletes both keys when it reaches zero.
	Disconnect(ctx context.Context, user string) (int64, error)
	// Snapshot reads the session counter and whether the liveness key exists.
	Snapshot(ctx context.Context, user string) (sessions int64, alive bool, err error)
	// ReapOrphan deletes the session key only if the liveness key is absent.
	ReapOrphan(ctx context.Context, user string) (bool, error)
	// CountAlive scans liveness keys. O(n), diagnostics only.
	CountAlive(ctx context.Context) (int64, error)
}

type lastSeenRecorder interface {
	UpdateLastSeen(ctx context.Context, user string, at time.Time) error
}

type transitionPublisher interface {
	PublishPresence(ctx context.Context, event model.PresenceEvent) error
}

// Service tracks presence for all users of the process.
type Service struct {
	store       Store
	lastSeen    lastSeenRecorder
	publisher   transitionPublisher
	clock       clock.Clock
	livenessTTL time.Duration
	sessionTTL  time.Duration
}

// NewService creates a presence service over store.
func NewService(
	store Store,
	lastSeen lastSeenRecorder,
	publisher transitionPublisher,
	clk clock.Clock,
	livenessTTL, sessionTTL time.Duration,
) *Service {
	return &Service{
		store:       store,
		lastSeen:    lastSeen,
		publisher:   publisher,
		clock:       clk,
		livenessTTL: livenessTTL,
		sessionTTL:  sessionTTL,
	}
}

// MarkOnline refreshes the user's liveness. Failures are logged only.
func (s *Service) MarkOnline(ctx context.Context, user string) {
	if err := s.store.Refresh(ctx, user, s.livenessTTL, s.sessionTTL); err != nil {
		zlog.Logger.Warn().Err(err).Str("user", user).Msg("failed to refresh presence")
	}
}

// TrackConnect registers a new live connection of user.
func (s *Service) TrackConnect(ctx context.Context, user string) error {
	sessions, err := s.store.Connect(ctx, user, s.livenessTTL, s.sessionTTL)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("user", user).Msg("failed to track connect")
		return err
	}

	zlog.Logger.Debug().Str("user", user).Int64("sessions", sessions).Msg("connection tracked")

	return nil
}

// TrackDisconnect unregisters a live connection of user. When it was the last one, the
// last-seen time is persisted and an offline transition is broadcast, both best-effort.
func (s *Service) TrackDisconnect(ctx context.Context, user string) error {
	remaining, err := s.store.Disconnect(ctx, user)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("user", user).Msg("failed to track disconnect")
		return err
	}

	if remaining > 0 {
		return nil
	}

	at := s.clock.Now()

	if err := s.lastSeen.UpdateLastSeen(ctx, user, at); err != nil {
		zlog.Logger.Error().Err(err).Str("user", user).Msg("failed to persist last seen")
	}

	event := model.PresenceEvent{User: user, Online: false, LastSeen: at}
	if err := s.publisher.PublishPresence(ctx, event); err != nil {
		zlog.Logger.Warn().Err(err).Str("user", user).Msg("failed to broadcast offline transition")
	}

	return nil
}

// IsOnline reports whether user has a live connection right now.
//
// A positive session counter whose liveness key has expired is stale: it is reaped
// here and the user is reported offline.
func (s *Service) IsOnline(ctx context.Context, user string) bool {
	sessions, alive, err := s.store.Snapshot(ctx, user)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("user", user).Msg("presence unavailable, assuming offline")
		return false
	}

	if sessions <= 0 {
		return false
	}

	if !alive {
		reaped, err := s.store.ReapOrphan(ctx, user)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("user", user).Msg("failed to reap orphaned session")
		} else if reaped {
			zlog.Logger.Info().Str("user", user).Int64("sessions", sessions).Msg("reaped orphaned session counter")
		}

		return false
	}

	return true
}

// OnlineCount returns an approximate number of users with a live liveness key.
func (s *Service) OnlineCount(ctx context.Context) (int64, error) {
	return s.store.CountAlive(ctx)
}
