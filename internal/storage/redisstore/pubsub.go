package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

const (
	liveChannelPrefix = "live:user:"
	// PresenceChannel carries model.PresenceEvent transitions.
	PresenceChannel = "presence:events"
)

// LiveChannel returns the pub/sub channel the realtime gateway subscribes to for user.
func LiveChannel(user string) string {
	return liveChannelPrefix + user
}

// Publisher emits live-channel messages and presence transitions over Redis pub/sub.
// The realtime gateway holds one subscription per connected user, so the receiver
// count of PUBLISH tells whether any live connection got the message.
type Publisher struct {
	rdb redis.Cmdable
}

// NewPublisher creates a publisher on rdb.
func NewPublisher(rdb redis.Cmdable) *Publisher {
	return &Publisher{rdb: rdb}
}

// EmitChatUpdate sends a chat update to user's live connections.
func (p *Publisher) EmitChatUpdate(ctx context.Context, user string, msg model.LiveMessage) (bool, error) {
	msg.Event = model.LiveEventChatUpdate
	return p.emit(ctx, user, msg)
}

// EmitNotification sends a generic notification to user's live connections.
func (p *Publisher) EmitNotification(ctx context.Context, user string, msg model.LiveMessage) (bool, error) {
	msg.Event = model.LiveEventNotification
	return p.emit(ctx, user, msg)
}

func (p *Publisher) emit(ctx context.Context, user string, msg model.LiveMessage) (bool, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return false, fmt.Errorf("marshal live message: %w", err)
	}

	receivers, err := p.rdb.Publish(ctx, LiveChannel(user), body).Result()
	if err != nil {
		return false, fmt.Errorf("publish live message: %w", err)
	}

	return receivers > 0, nil
}

// PublishPresence broadcasts a presence transition.
func (p *Publisher) PublishPresence(ctx context.Context, event model.PresenceEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal presence event: %w", err)
	}

	if err := p.rdb.Publish(ctx, PresenceChannel, body).Err(); err != nil {
		return fmt.Errorf("publish presence event: %w", err)
	}

	return nil
}
