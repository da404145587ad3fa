package model

import "time"

// PresenceEvent is broadcast when a user's online state changes.
type PresenceEvent struct {
	User     string    `json:"user"`
	Online   bool      `json:"online"`
	LastSeen time.Time `json:"last_seen"`
}

// LiveMessage is the body emitted to a user's live connections.
type LiveMessage struct {
	Event     LiveEvent `json:"event"`
	EventID   string    `json:"eventId"`
	Type      Type      `json:"type"`
	Payload   Payload   `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}
