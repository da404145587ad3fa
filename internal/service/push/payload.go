package push

import (
	"encoding/json"
	"time"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

const (
	defaultTitle = "New notification"
	defaultBody  = "You have new activity"
)

// Render encodes msg as the JSON body the suppression agent parses.
func Render(msg model.PushMessage) ([]byte, error) {
	return json.Marshal(msg)
}

// MessageFor builds the wake-up message of job. icon is used when the payload has none.
func MessageFor(job model.NotificationJob, icon string) model.PushMessage {
	msg := model.PushMessage{
		Title:     job.Payload.Title,
		Body:      job.Payload.Message,
		Icon:      job.Payload.Icon,
		URL:       job.Payload.URL,
		Type:      job.Type,
		EventID:   job.ID,
		MessageID: job.Payload.MessageID,
		Recipient: job.Recipient(),
	}

	if msg.Title == "" {
		msg.Title = defaultTitle
	}
	if msg.Body == "" {
		msg.Body = defaultBody
	}
	if msg.Icon == "" {
		msg.Icon = icon
	}

	// Same tag collapses repeated alerts about one thing on the device.
	switch {
	case job.Payload.ConversationID != "":
		msg.Tag = "chat:" + job.Payload.ConversationID
	default:
		if ref, ok := job.Payload.Entity(); ok {
			msg.Tag = ref.Key()
		}
	}

	return msg
}

// OptionsFor maps the job's delivery hints to transport options.
func OptionsFor(job model.NotificationJob, defaultTTL time.Duration) model.PushOptions {
	opts := model.PushOptions{
		TTL:     defaultTTL,
		Urgency: model.PriorityNormal,
	}

	if job.Delivery.TTLSeconds > 0 {
		opts.TTL = time.Duration(job.Delivery.TTLSeconds) * time.Second
	}

	switch {
	case job.Delivery.Priority == model.PriorityHigh, job.Type == model.TypeSecurityAlert, job.Type == model.TypeChatMessage:
		opts.Urgency = model.PriorityHigh
	case job.Delivery.Priority == model.PriorityLow:
		opts.Urgency = model.PriorityLow
	}

	if ref, ok := job.Payload.Entity(); ok {
		opts.Topic = topic(ref)
	}

	return opts
}

// topic renders ref in the URL-safe base64 alphabet, at most 32 characters, as push services require.
func topic(ref model.EntityRef) string {
	b := []byte(ref.Type + "-" + ref.ID)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			b[i] = '_'
		}
	}

	if len(b) > 32 {
		b = b[:32]
	}

	return string(b)
}
