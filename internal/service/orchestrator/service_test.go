package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/delivery-orchestrator/internal/mocks/service/orchestrator"
	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/pkg/clock"
)

var now = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *Service
	presence *mocks.MockpresenceReader
	ledger   *mocks.MockeventLedger
	live     *mocks.MockliveEmitter
	push     *mocks.Mockpusher
	guard    *mocks.MockpushGuard
	emails   *mocks.MockemailLookup
	mailer   *mocks.Mockmailer
}

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		presence: mocks.NewMockpresenceReader(ctrl),
		ledger:   mocks.NewMockeventLedger(ctrl),
		live:     mocks.NewMockliveEmitter(ctrl),
		push:     mocks.NewMockpusher(ctrl),
		guard:    mocks.NewMockpushGuard(ctrl),
		emails:   mocks.NewMockemailLookup(ctrl),
		mailer:   mocks.NewMockmailer(ctrl),
	}

	f.svc = NewService(f.presence, f.ledger, f.live, f.push, f.guard, clock.NewMockClock(now), Options{DefaultTTL: time.Hour})
	f.ledger.EXPECT().MarkDispatched(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func commentJob() model.NotificationJob {
	return model.NotificationJob{
		ID:      "evt-1",
		Type:    model.TypeCommentActivity,
		Target:  model.Target{User: "U1"},
		Payload: model.Payload{Title: "New comment", EntityType: "comment", EntityID: "42"},
	}
}

func TestRoute_NoRecipient(t *testing.T) {
	f := setup(t)

	job := commentJob()
	job.Target.User = ""

	res, err := f.svc.Route(context.Background(), job)
	assert.Error(t, err)
	assert.Equal(t, model.ResultPermanent, res)
}

func TestRoute_UnknownType(t *testing.T) {
	f := setup(t)

	job := commentJob()
	job.Type = "poke"

	res, err := f.svc.Route(context.Background(), job)
	assert.Error(t, err)
	assert.Equal(t, model.ResultPermanent, res)
}

func TestRoute_SecurityAlertUsesBothChannels(t *testing.T) {
	for _, online := range []bool{true, false} {
		f := setup(t)

		job := model.NotificationJob{ID: "sec-1", Type: model.TypeSecurityAlert, Target: model.Target{User: "U1"}}

		f.presence.EXPECT().IsOnline(gomock.Any(), "U1").Return(online).AnyTimes()
		f.live.EXPECT().EmitNotification(gomock.Any(), "U1", gomock.Any()).Return(false, errors.New("redis down"))
		f.push.EXPECT().Push(gomock.Any(), "U1", gomock.Any(), gomock.Any()).
			Return(model.FanoutReport{Result: model.ResultSuccess, Attempted: 1, Succeeded: 1}, nil)

		res, err := f.svc.Route(context.Background(), job)
		assert.NoError(t, err)
		assert.Equal(t, model.ResultSuccess, res)
	}
}

func TestRoute_SecurityAlertSkipsLedgerAndGuard(t *testing.T) {
	f := setup(t)

	job := model.NotificationJob{
		ID:      "sec-1",
		Type:    model.TypeSecurityAlert,
		Target:  model.Target{User: "U1"},
		Payload: model.Payload{EntityType: "session", EntityID: "s1"},
	}

	f.ledger.EXPECT().Processed(gomock.Any(), gomock.Any()).Times(0)
	f.guard.EXPECT().PushAlreadySent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.live.EXPECT().EmitNotification(gomock.Any(), "U1", gomock.Any()).Return(true, nil)
	f.push.EXPECT().Push(gomock.Any(), "U1", gomock.Any(), gomock.Any()).
		Return(model.FanoutReport{Result: model.ResultSuccess, Attempted: 1, Succeeded: 1}, nil)

	res, _ := f.svc.Route(context.Background(), job)
	assert.Equal(t, model.ResultSuccess, res)
}

func TestRoute_SecurityAlertEmailFallback(t *testing.T) {
	f := setup(t)
	f.svc.WithEmailFallback(f.emails, f.mailer)

	job := model.NotificationJob{
		ID:      "sec-1",
		Type:    model.TypeSecurityAlert,
		Target:  model.Target{User: "U1"},
		Payload: model.Payload{Title: "New login", Message: "From Berlin"},
	}

	f.live.EXPECT().EmitNotification(gomock.Any(), "U1", gomock.Any()).Return(false, nil)
	f.push.EXPECT().Push(gomock.Any(), "U1", gomock.Any(), gomock.Any()).
		Return(model.FanoutReport{Result: model.ResultRetryable, Attempted: 1, Retryable: 1}, nil)
	f.emails.EXPECT().GetEmail(gomock.Any(), "U1").Return("u1@example.com", nil)
	f.mailer.EXPECT().Send(gomock.Any(), "u1@example.com", "New login", "From Berlin").Return(nil)

	res, err := f.svc.Route(context.Background(), job)
	assert.NoError(t, err)
	assert.Equal(t, model.ResultSuccess, res)
}

func TestRoute_OnlineUsesLiveOnly(t *testing.T) {
	f := setup(t)

	job := model.NotificationJob{
		ID:      "evt-1",
		Type:    model.TypeChatMessage,
		Target:  model.Target{User: "U1"},
		Payload: model.Payload{MessageID: "M1"},
	}

	f.ledger.EXPECT().Processed(gomock.Any(), "M1").Return(false)
	f.presence.EXPECT().IsOnline(gomock.Any(), "U1").Return(true)
	f.live.EXPECT().EmitChatUpdate(gomock.Any(), "U1", gomock.Any()).Return(true, nil)
	f.push.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := f.svc.Route(context.Background(), job)
	assert.NoError(t, err)
	assert.Equal(t, model.ResultSuccess, res)
}

func TestRoute_OnlineLiveMissIsRetryableWithoutPush(t *testing.T) {
	f := setup(t)

	f.ledger.EXPECT().Processed(gomock.Any(), "evt-1").Return(false)
	f.presence.EXPECT().IsOnline(gomock.Any(), "U1").Return(true)
	f.live.EXPECT().EmitNotification(gomock.Any(), "U1", gomock.Any()).Return(false, nil)
	f.push.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := f.svc.Route(context.Background(), commentJob())
	assert.Error(t, err)
	assert.Equal(t, model.ResultRetryable, res)
}

func TestRoute_OfflineAlreadyPushedIsSkipped(t *testing.T) {
	f := setup(t)

	f.ledger.EXPECT().Processed(gomock.Any(), "evt-1").Return(false)
	f.presence.EXPECT().IsOnline(gomock.Any(), "U1").Return(false)
	f.guard.EXPECT().PushAlreadySent(gomock.Any(), "U1", model.EntityRef{Type: "comment", ID: "42"}).Return(true, nil)
	f.ledger.EXPECT().MarkSkipped(gomock.Any(), "evt-1", gomock.Any()).Return(nil)
	f.push.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := f.svc.Route(context.Background(), commentJob())
	assert.NoError(t, err)
	assert.Equal(t, model.ResultSuccess, res)
}

func TestRoute_OfflineGuardErrorFailsOpen(t *testing.T) {
	f := setup(t)

	f.ledger.EXPECT().Processed(gomock.Any(), "evt-1").Return(false)
	f.presence.EXPECT().IsOnline(gomock.Any(), "U1").Return(false)
	f.guard.EXPECT().PushAlreadySent(gomock.Any(), "U1", gomock.Any()).Return(false, errors.New("db down"))
	f.push.EXPECT().Push(gomock.Any(), "U1", gomock.Any(), gomock.Any()).
		Return(model.FanoutReport{Result: model.ResultSuccess, Attempted: 1, Succeeded: 1}, nil)
	f.guard.EXPECT().MarkPushSent(gomock.Any(), "U1", gomock.Any(), now).Return(errors.New("db down"))

	res, err := f.svc.Route(context.Background(), commentJob())
	assert.NoError(t, err)
	assert.Equal(t, model.ResultSuccess, res)
}

func TestRoute_OfflinePushRetryableKeepsGuardOpen(t *testing.T) {
	f := setup(t)

	f.ledger.EXPECT().Processed(gomock.Any(), "evt-1").Return(false)
	f.presence.EXPECT().IsOnline(gomock.Any(), "U1").Return(false)
	f.guard.EXPECT().PushAlreadySent(gomock.Any(), "U1", gomock.Any()).Return(false, nil)
	f.push.EXPECT().Push(gomock.Any(), "U1", gomock.Any(), gomock.Any()).
		Return(model.FanoutReport{Result: model.ResultRetryable, Attempted: 2, Retryable: 2}, nil)
	f.guard.EXPECT().MarkPushSent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := f.svc.Route(context.Background(), commentJob())
	assert.NoError(t, err)
	assert.Equal(t, model.ResultRetryable, res)
}

func TestRoute_OfflineChatSkipsGuard(t *testing.T) {
	f := setup(t)

	job := model.NotificationJob{
		ID:      "evt-2",
		Type:    model.TypeChatMessage,
		Target:  model.Target{User: "U1"},
		Payload: model.Payload{MessageID: "M2", ConversationID: "C1"},
	}

	f.ledger.EXPECT().Processed(gomock.Any(), "M2").Return(false)
	f.presence.EXPECT().IsOnline(gomock.Any(), "U1").Return(false)
	f.guard.EXPECT().PushAlreadySent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.push.EXPECT().Push(gomock.Any(), "U1", gomock.Any(), gomock.Any()).
		Return(model.FanoutReport{Result: model.ResultSuccess}, nil)

	res, err := f.svc.Route(context.Background(), job)
	assert.NoError(t, err)
	assert.Equal(t, model.ResultSuccess, res)
}

func TestRoute_OfflineLookupErrorIsRetryable(t *testing.T) {
	f := setup(t)

	f.ledger.EXPECT().Processed(gomock.Any(), "evt-1").Return(false)
	f.presence.EXPECT().IsOnline(gomock.Any(), "U1").Return(false)
	f.guard.EXPECT().PushAlreadySent(gomock.Any(), "U1", gomock.Any()).Return(false, nil)
	f.push.EXPECT().Push(gomock.Any(), "U1", gomock.Any(), gomock.Any()).Return(model.FanoutReport{}, errors.New("db down"))

	res, err := f.svc.Route(context.Background(), commentJob())
	assert.Error(t, err)
	assert.Equal(t, model.ResultRetryable, res)
}

func TestRoute_ProcessedEventIsSuccess(t *testing.T) {
	f := setup(t)

	f.ledger.EXPECT().Processed(gomock.Any(), "evt-1").Return(true)
	f.presence.EXPECT().IsOnline(gomock.Any(), gomock.Any()).Times(0)

	res, err := f.svc.Route(context.Background(), commentJob())
	assert.NoError(t, err)
	assert.Equal(t, model.ResultSuccess, res)
}
