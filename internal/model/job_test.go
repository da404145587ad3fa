package model

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotificationJob_Expired(t *testing.T) {
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		job  NotificationJob
		want bool
	}{
		{"no ttl", NotificationJob{CreatedAt: now.Add(-time.Hour)}, false},
		{"within ttl", NotificationJob{CreatedAt: now.Add(-500 * time.Millisecond), Delivery: Delivery{TTLSeconds: 1}}, false},
		{"past ttl", NotificationJob{CreatedAt: now.Add(-2000 * time.Millisecond), Delivery: Delivery{TTLSeconds: 1}}, true},
		{"missing created_at", NotificationJob{Delivery: Delivery{TTLSeconds: 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.job.Expired(now))
		})
	}
}

func TestType_Routing(t *testing.T) {
	chat, ok := TypeChatMessage.Routing()
	assert.True(t, ok)
	assert.Equal(t, LiveEventChatUpdate, chat.Live)
	assert.False(t, chat.ContentGuard)
	assert.False(t, chat.Critical)

	for _, typ := range []Type{TypeReportActivity, TypeCommentActivity, TypeFollowActivity, TypeMentionActivity} {
		r, ok := typ.Routing()
		assert.True(t, ok, typ)
		assert.True(t, r.ContentGuard, typ)
		assert.Equal(t, LiveEventNotification, r.Live, typ)
	}

	sec, ok := TypeSecurityAlert.Routing()
	assert.True(t, ok)
	assert.True(t, sec.Critical)
	assert.False(t, sec.ContentGuard)

	_, ok = Type("billing").Routing()
	assert.False(t, ok)
}

func TestNotificationJob_EventKey(t *testing.T) {
	assert.Equal(t, "evt-1", NotificationJob{ID: "evt-1"}.EventKey())
	assert.Equal(t, "M1", NotificationJob{ID: "evt-1", Payload: Payload{MessageID: "M1"}}.EventKey())
}

func TestPayload_Entity(t *testing.T) {
	_, ok := Payload{EntityType: "comment"}.Entity()
	assert.False(t, ok)

	ref, ok := Payload{EntityType: "comment", EntityID: "42"}.Entity()
	assert.True(t, ok)
	assert.Equal(t, "comment:42", ref.Key())
}

func TestPushError_Classification(t *testing.T) {
	cause := errors.New("boom")

	assert.True(t, (&PushError{StatusCode: http.StatusGone, Err: cause}).Gone())
	assert.True(t, (&PushError{StatusCode: http.StatusNotFound, Err: cause}).Gone())
	assert.False(t, (&PushError{StatusCode: http.StatusGone, Err: cause}).Retryable())

	assert.True(t, (&PushError{StatusCode: http.StatusServiceUnavailable, Err: cause}).Retryable())
	assert.True(t, (&PushError{StatusCode: http.StatusTooManyRequests, Err: cause}).Retryable())
	assert.True(t, (&PushError{Err: cause}).Retryable())
	assert.False(t, (&PushError{StatusCode: http.StatusBadRequest, Err: cause}).Retryable())

	assert.ErrorIs(t, &PushError{StatusCode: 500, Err: cause}, cause)
}

func TestParseLedgerStatus(t *testing.T) {
	s, ok := ParseLedgerStatus("delivered")
	assert.True(t, ok)
	assert.Equal(t, LedgerProcessed, s)

	_, ok = ParseLedgerStatus("read")
	assert.False(t, ok)
}
