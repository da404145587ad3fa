package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

func TestDecode(t *testing.T) {
	body := `{
		"id": "evt-1",
		"traceId": "tr-1",
		"type": "comment-activity",
		"target": {"user": "U1"},
		"payload": {"title": "New comment", "entityType": "comment", "entityId": "42"},
		"delivery": {"ttlSeconds": 60, "priority": "high"},
		"createdAt": "2025-09-15T10:00:00Z",
		"attempt": 2
	}`

	msg, err := Decode([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "evt-1", msg.ID)
	assert.Equal(t, model.TypeCommentActivity, msg.Type)
	assert.Equal(t, "U1", msg.Recipient())
	assert.Equal(t, 60, msg.Delivery.TTLSeconds)
	assert.Equal(t, model.PriorityHigh, msg.Delivery.Priority)
	assert.Equal(t, time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC), msg.CreatedAt)
	assert.Equal(t, 2, msg.Attempt)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestJobMessage_FlatWireShape(t *testing.T) {
	raw, err := json.Marshal(JobMessage{NotificationJob: model.NotificationJob{ID: "evt-1"}, Attempt: 1})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "evt-1", fields["id"])
	assert.EqualValues(t, 1, fields["attempt"])
	assert.NotContains(t, fields, "NotificationJob")
}

// scriptedSource delivers bodies[i] on the i-th subscription. Every subscription but
// the last then ends with errs[i]; the last one blocks until released.
type scriptedSource struct {
	mu      sync.Mutex
	calls   int
	bodies  []string
	errs    []error
	release chan struct{}
}

func (s *scriptedSource) ConsumeWithRetry(msgChan chan []byte, _ retry.Strategy) error {
	s.mu.Lock()
	i := s.calls
	s.calls++
	s.mu.Unlock()

	if i < len(s.bodies) {
		msgChan <- []byte(s.bodies[i])
	}
	if i < len(s.errs) {
		return s.errs[i]
	}

	<-s.release
	return nil
}

func (s *scriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestNotificationQueue_Consume_ResubscribesWhenDeliveryEnds(t *testing.T) {
	src := &scriptedSource{
		bodies:  []string{`{"id":"evt-1"}`, `{"id":"evt-2"}`, `{"id":"evt-3"}`},
		errs:    []error{nil, errors.New("channel/connection is not open")},
		release: make(chan struct{}),
	}
	defer close(src.release)

	q := &NotificationQueue{consumer: src, reconsumeDelay: time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan JobMessage)
	done := make(chan error, 1)
	go func() { done <- q.Consume(ctx, out, retry.Strategy{Attempts: 1}) }()

	for _, want := range []string{"evt-1", "evt-2", "evt-3"} {
		select {
		case msg := <-out:
			assert.Equal(t, want, msg.ID)
		case <-time.After(time.Second):
			t.Fatalf("no job %s after the subscription ended", want)
		}
	}

	assert.Equal(t, 3, src.Calls())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Consume did not return after cancel")
	}
}
