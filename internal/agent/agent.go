// Package agent decides, on the receiving device, whether a wake-up message is shown.
//
// The agent runs without the foreground application. It consults only the domain
// status endpoint (and, when one is attached, a foreground client with a short
// deadline) and fails open: when in doubt the notification is shown.
package agent

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

//go:generate mockgen -source=agent.go -destination=../mocks/agent/mock.go -package=mocks

const (
	fallbackTitle = "New notification"
	fallbackBody  = "Open the app to see what's new"
)

type statusService interface {
	Status(ctx context.Context, id string) (model.DeliveryStatus, error)
	Ack(ctx context.Context, id, recipient string) error
}

// Renderer shows a system notification.
type Renderer interface {
	Render(ctx context.Context, n model.PushMessage) error
}

// Foreground is a running foreground client that may already have shown the event.
type Foreground interface {
	Shown(ctx context.Context, id string) (bool, error)
}

// Decision is what the agent did with a wake-up message.
type Decision int

const (
	DecisionRender Decision = iota
	DecisionSuppress
)

func (d Decision) String() string {
	if d == DecisionSuppress {
		return "suppress"
	}

	return "render"
}

// Options bounds the agent's calls.
type Options struct {
	ForegroundTimeout time.Duration
	AckTimeout        time.Duration
}

// Agent handles wake-up messages for one device.
type Agent struct {
	status   statusService
	renderer Renderer
	opts     Options

	mu         sync.RWMutex
	foreground Foreground

	wg sync.WaitGroup
}

func New(status statusService, renderer Renderer, opts Options) *Agent {
	return &Agent{status: status, renderer: renderer, opts: opts}
}

// AttachForeground registers the running foreground client. Pass nil when it goes away.
func (a *Agent) AttachForeground(f Foreground) {
	a.mu.Lock()
	a.foreground = f
	a.mu.Unlock()
}

// HandlePush processes one raw wake-up payload. The returned error is a render failure.
func (a *Agent) HandlePush(ctx context.Context, raw []byte) (Decision, error) {
	msg := parse(raw)
	id := msg.Identity()

	if id != "" && a.alreadyDelivered(ctx, id) {
		zlog.Logger.Debug().Str("id", id).Msg("already delivered, suppressing")
		return DecisionSuppress, nil
	}

	if msg.Type == model.TypeChatMessage && msg.MessageID != "" && msg.Recipient != "" {
		a.ack(msg.MessageID, msg.Recipient)
	}

	return DecisionRender, a.renderer.Render(ctx, msg)
}

// Wait blocks until outstanding acknowledgments finish.
func (a *Agent) Wait() {
	a.wg.Wait()
}

// parse never fails: anything unreadable becomes a generic notification.
func parse(raw []byte) model.PushMessage {
	var msg model.PushMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		zlog.Logger.Warn().Err(err).Msg("unreadable push payload, showing generic notification")
		msg = model.PushMessage{}
	}

	if msg.Title == "" {
		msg.Title = fallbackTitle
	}
	if msg.Body == "" {
		msg.Body = fallbackBody
	}

	return msg
}

func (a *Agent) alreadyDelivered(ctx context.Context, id string) bool {
	a.mu.RLock()
	fg := a.foreground
	a.mu.RUnlock()

	if fg != nil && a.askForeground(ctx, fg, id) {
		return true
	}

	status, err := a.status.Status(ctx, id)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", id).Msg("status query failed, rendering anyway")
		return false
	}

	return status.Delivered || status.Read
}

func (a *Agent) askForeground(ctx context.Context, fg Foreground, id string) bool {
	fctx, cancel := context.WithTimeout(ctx, a.opts.ForegroundTimeout)
	defer cancel()

	answer := make(chan bool, 1)
	go func() {
		shown, err := fg.Shown(fctx, id)
		answer <- err == nil && shown
	}()

	select {
	case shown := <-answer:
		return shown
	case <-fctx.Done():
		zlog.Logger.Debug().Str("id", id).Msg("foreground did not answer in time")
		return false
	}
}

// ack is fire-and-forget. A missed ack is reconciled when the app opens.
func (a *Agent) ack(messageID, recipient string) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), a.opts.AckTimeout)
		defer cancel()

		if err := a.status.Ack(ctx, messageID, recipient); err != nil {
			zlog.Logger.Warn().Err(err).Str("message_id", messageID).Msg("delivery ack failed")
		}
	}()
}
