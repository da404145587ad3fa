package model

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// PushSubscription is a wake-up channel endpoint registered by a device.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Endpoint  string    `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// PushMessage is the payload rendered into a wake-up channel message and parsed by the suppression agent.
type PushMessage struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Icon      string `json:"icon,omitempty"`
	Tag       string `json:"tag,omitempty"`
	URL       string `json:"url,omitempty"`
	Type      Type   `json:"type"`
	EventID   string `json:"eventId,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Recipient string `json:"recipient,omitempty"`
}

// Identity returns the id the agent checks against the status endpoint.
func (m PushMessage) Identity() string {
	if m.MessageID != "" {
		return m.MessageID
	}

	return m.EventID
}

// PushOptions are transport-level parameters of one send.
type PushOptions struct {
	TTL     time.Duration
	Urgency Priority
	Topic   string
}

// PushError is a structured wake-up channel failure.
// StatusCode is zero when the request never got a response.
type PushError struct {
	StatusCode int
	Err        error
}

func (e *PushError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("push transport: %v", e.Err)
	}

	return fmt.Sprintf("push transport: status %d: %v", e.StatusCode, e.Err)
}

func (e *PushError) Unwrap() error {
	return e.Err
}

// Gone reports whether the push service says the subscription no longer exists.
func (e *PushError) Gone() bool {
	return e.StatusCode == http.StatusGone || e.StatusCode == http.StatusNotFound
}

// Retryable reports whether a later attempt may succeed.
func (e *PushError) Retryable() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}

// FanoutReport summarizes one fan-out over a recipient's subscriptions.
type FanoutReport struct {
	Result      Result
	Attempted   int
	Succeeded   int
	Retryable   int
	Permanent   int
	Deactivated int
}
