package push

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/delivery-orchestrator/internal/mocks/service/push"
	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

func newSub(endpoint string) model.PushSubscription {
	return model.PushSubscription{ID: uuid.New(), UserID: "U1", Endpoint: endpoint, Active: true}
}

func TestEngine_Push_MixedOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocksubscriptionRepository(ctrl)
	transportMock := mocks.NewMocktransport(ctrl)
	engine := NewEngine(repoMock, transportMock, 4)

	ok, gone, broken := newSub("ok"), newSub("gone"), newSub("broken")

	repoMock.EXPECT().GetActiveByUser(gomock.Any(), "U1").Return([]model.PushSubscription{ok, gone, broken}, nil)
	transportMock.EXPECT().Send(gomock.Any(), ok, gomock.Any(), gomock.Any()).Return(nil)
	transportMock.EXPECT().Send(gomock.Any(), gone, gomock.Any(), gomock.Any()).
		Return(&model.PushError{StatusCode: http.StatusGone, Err: errors.New("expired")})
	transportMock.EXPECT().Send(gomock.Any(), broken, gomock.Any(), gomock.Any()).
		Return(&model.PushError{StatusCode: http.StatusBadGateway, Err: errors.New("upstream")})
	repoMock.EXPECT().Deactivate(gomock.Any(), gone.ID).Return(nil).Times(1)

	report, err := engine.Push(context.Background(), "U1", model.PushMessage{Title: "hi"}, model.PushOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.ResultSuccess, report.Result)
	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Retryable)
	assert.Equal(t, 1, report.Permanent)
	assert.Equal(t, 1, report.Deactivated)
}

func TestEngine_Push_AllRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocksubscriptionRepository(ctrl)
	transportMock := mocks.NewMocktransport(ctrl)
	engine := NewEngine(repoMock, transportMock, 0)

	repoMock.EXPECT().GetActiveByUser(gomock.Any(), "U1").Return([]model.PushSubscription{newSub("a"), newSub("b")}, nil)
	transportMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&model.PushError{StatusCode: http.StatusServiceUnavailable, Err: errors.New("overloaded")}).Times(2)
	repoMock.EXPECT().Deactivate(gomock.Any(), gomock.Any()).Times(0)

	report, err := engine.Push(context.Background(), "U1", model.PushMessage{}, model.PushOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.ResultRetryable, report.Result)
	assert.Equal(t, 0, report.Deactivated)
}

func TestEngine_Push_AllPermanentIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocksubscriptionRepository(ctrl)
	transportMock := mocks.NewMocktransport(ctrl)
	engine := NewEngine(repoMock, transportMock, 2)

	sub := newSub("gone")
	repoMock.EXPECT().GetActiveByUser(gomock.Any(), "U1").Return([]model.PushSubscription{sub}, nil)
	transportMock.EXPECT().Send(gomock.Any(), sub, gomock.Any(), gomock.Any()).
		Return(&model.PushError{StatusCode: http.StatusNotFound, Err: errors.New("unknown")})
	repoMock.EXPECT().Deactivate(gomock.Any(), sub.ID).Return(errors.New("db down"))

	report, err := engine.Push(context.Background(), "U1", model.PushMessage{}, model.PushOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.ResultSuccess, report.Result)
	assert.Equal(t, 1, report.Permanent)
	assert.Equal(t, 0, report.Deactivated)
}

func TestEngine_Push_NetworkErrorIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocksubscriptionRepository(ctrl)
	transportMock := mocks.NewMocktransport(ctrl)
	engine := NewEngine(repoMock, transportMock, 1)

	repoMock.EXPECT().GetActiveByUser(gomock.Any(), "U1").Return([]model.PushSubscription{newSub("a")}, nil)
	transportMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&model.PushError{Err: errors.New("connection refused")})

	report, err := engine.Push(context.Background(), "U1", model.PushMessage{}, model.PushOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.ResultRetryable, report.Result)
}

func TestEngine_Push_NoSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocksubscriptionRepository(ctrl)
	transportMock := mocks.NewMocktransport(ctrl)
	engine := NewEngine(repoMock, transportMock, 4)

	repoMock.EXPECT().GetActiveByUser(gomock.Any(), "U1").Return(nil, nil)

	report, err := engine.Push(context.Background(), "U1", model.PushMessage{}, model.PushOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.ResultSuccess, report.Result)
	assert.Equal(t, 0, report.Attempted)
}

func TestEngine_Push_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocksubscriptionRepository(ctrl)
	engine := NewEngine(repoMock, mocks.NewMocktransport(ctrl), 4)

	repoMock.EXPECT().GetActiveByUser(gomock.Any(), "U1").Return(nil, errors.New("db down"))

	_, err := engine.Push(context.Background(), "U1", model.PushMessage{}, model.PushOptions{})
	assert.Error(t, err)
}

func TestMessageFor(t *testing.T) {
	job := model.NotificationJob{
		ID:     "evt-1",
		Type:   model.TypeChatMessage,
		Target: model.Target{User: "U1"},
		Payload: model.Payload{
			MessageID:      "M1",
			ConversationID: "C1",
		},
	}

	msg := MessageFor(job, "/icon.png")
	assert.Equal(t, defaultTitle, msg.Title)
	assert.Equal(t, defaultBody, msg.Body)
	assert.Equal(t, "/icon.png", msg.Icon)
	assert.Equal(t, "chat:C1", msg.Tag)
	assert.Equal(t, "M1", msg.Identity())
	assert.Equal(t, "U1", msg.Recipient)

	raw, err := Render(msg)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "M1", decoded["messageId"])
	assert.Equal(t, "chat-message", decoded["type"])
}

func TestOptionsFor(t *testing.T) {
	job := model.NotificationJob{
		Type:     model.TypeCommentActivity,
		Payload:  model.Payload{EntityType: "comment", EntityID: "42"},
		Delivery: model.Delivery{Priority: model.PriorityLow},
	}

	opts := OptionsFor(job, time.Hour)
	assert.Equal(t, time.Hour, opts.TTL)
	assert.Equal(t, model.PriorityLow, opts.Urgency)
	assert.Equal(t, "comment-42", opts.Topic)

	job.Type = model.TypeSecurityAlert
	job.Delivery = model.Delivery{TTLSeconds: 30}
	opts = OptionsFor(job, time.Hour)
	assert.Equal(t, 30*time.Second, opts.TTL)
	assert.Equal(t, model.PriorityHigh, opts.Urgency)
}
