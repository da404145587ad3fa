package model

import (
	"time"
)

// Type identifies the kind of activity a notification job reports.
type Type string

const (
	TypeChatMessage     Type = "chat-message"
	TypeReportActivity  Type = "report-activity"
	TypeCommentActivity Type = "comment-activity"
	TypeFollowActivity  Type = "follow-activity"
	TypeMentionActivity Type = "mention-activity"
	TypeSecurityAlert   Type = "security-alert"
)

// LiveEvent names the live-channel event a job is emitted as.
type LiveEvent string

const (
	LiveEventChatUpdate   LiveEvent = "chat:update"
	LiveEventNotification LiveEvent = "notification:new"
)

// Routing is the channel policy of a job type.
type Routing struct {
	Live LiveEvent
	// Critical jobs go through both channels regardless of presence and skip every dedup check.
	Critical bool
	// ContentGuard jobs consult push_sent_at before waking a device.
	ContentGuard bool
}

// Routing returns the channel policy for t. The second value is false for unknown types.
func (t Type) Routing() (Routing, bool) {
	switch t {
	case TypeChatMessage:
		return Routing{Live: LiveEventChatUpdate}, true
	case TypeReportActivity, TypeCommentActivity, TypeFollowActivity, TypeMentionActivity:
		return Routing{Live: LiveEventNotification, ContentGuard: true}, true
	case TypeSecurityAlert:
		return Routing{Live: LiveEventNotification, Critical: true}, true
	default:
		return Routing{}, false
	}
}

// Priority is the producer's urgency hint.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Target identifies the recipient of a job.
type Target struct {
	User string `json:"user"`
}

// Payload carries what the channels render and the entity the job is about.
type Payload struct {
	Title          string `json:"title"`
	Message        string `json:"message"`
	MessageID      string `json:"messageId,omitempty"`      // chat message identity
	ConversationID string `json:"conversationId,omitempty"` // chat conversation
	EntityType     string `json:"entityType,omitempty"`     // e.g. "report", "comment", "user"
	EntityID       string `json:"entityId,omitempty"`
	URL            string `json:"url,omitempty"`
	Icon           string `json:"icon,omitempty"`
}

// Entity returns the content entity the payload references, if any.
func (p Payload) Entity() (EntityRef, bool) {
	if p.EntityType == "" || p.EntityID == "" {
		return EntityRef{}, false
	}

	return EntityRef{Type: p.EntityType, ID: p.EntityID}, true
}

// EntityRef is a (type, id) pair naming a piece of content.
type EntityRef struct {
	Type string
	ID   string
}

// Key returns a stable string form of the reference.
func (e EntityRef) Key() string {
	return e.Type + ":" + e.ID
}

// Delivery holds optional delivery constraints.
type Delivery struct {
	TTLSeconds int      `json:"ttlSeconds,omitempty"`
	Priority   Priority `json:"priority,omitempty"`
}

// NotificationJob is the unit of work consumed from the job queue.
type NotificationJob struct {
	ID        string    `json:"id" validate:"required"`
	TraceID   string    `json:"traceId"`
	Type      Type      `json:"type" validate:"required"`
	Target    Target    `json:"target"`
	Payload   Payload   `json:"payload"`
	Delivery  Delivery  `json:"delivery"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the job outlived its declared time-to-live at now.
// Jobs without a TTL never expire.
func (j NotificationJob) Expired(now time.Time) bool {
	if j.Delivery.TTLSeconds <= 0 || j.CreatedAt.IsZero() {
		return false
	}

	return now.Sub(j.CreatedAt) > time.Duration(j.Delivery.TTLSeconds)*time.Second
}

// Recipient returns the recipient identity, empty when the job has none.
func (j NotificationJob) Recipient() string {
	return j.Target.User
}

// EventKey is the identity the recipient side acknowledges: the chat message id when present, else the job id.
func (j NotificationJob) EventKey() string {
	if j.Payload.MessageID != "" {
		return j.Payload.MessageID
	}

	return j.ID
}
