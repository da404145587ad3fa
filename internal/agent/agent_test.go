package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/delivery-orchestrator/internal/mocks/agent"
	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

var opts = Options{ForegroundTimeout: 50 * time.Millisecond, AckTimeout: time.Second}

func TestAgent_HandlePush_DeliveredIsSuppressed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statusMock := mocks.NewMockstatusService(ctrl)
	rendererMock := mocks.NewMockRenderer(ctrl)
	a := New(statusMock, rendererMock, opts)

	raw := []byte(`{"title":"Anna","body":"hi","type":"chat-message","messageId":"M1","recipient":"U1"}`)

	statusMock.EXPECT().Status(gomock.Any(), "M1").Return(model.DeliveryStatus{Delivered: true}, nil)
	statusMock.EXPECT().Ack(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	rendererMock.EXPECT().Render(gomock.Any(), gomock.Any()).Times(0)

	decision, err := a.HandlePush(context.Background(), raw)
	a.Wait()

	require.NoError(t, err)
	assert.Equal(t, DecisionSuppress, decision)
}

func TestAgent_HandlePush_ReadIsSuppressed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statusMock := mocks.NewMockstatusService(ctrl)
	a := New(statusMock, mocks.NewMockRenderer(ctrl), opts)

	statusMock.EXPECT().Status(gomock.Any(), "evt-9").Return(model.DeliveryStatus{Read: true}, nil)

	decision, err := a.HandlePush(context.Background(), []byte(`{"type":"follow-activity","eventId":"evt-9"}`))
	require.NoError(t, err)
	assert.Equal(t, DecisionSuppress, decision)
}

func TestAgent_HandlePush_StatusErrorFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statusMock := mocks.NewMockstatusService(ctrl)
	rendererMock := mocks.NewMockRenderer(ctrl)
	a := New(statusMock, rendererMock, opts)

	statusMock.EXPECT().Status(gomock.Any(), "evt-1").Return(model.DeliveryStatus{}, errors.New("offline"))
	rendererMock.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil)

	decision, err := a.HandlePush(context.Background(), []byte(`{"title":"New comment","type":"comment-activity","eventId":"evt-1"}`))
	require.NoError(t, err)
	assert.Equal(t, DecisionRender, decision)
}

func TestAgent_HandlePush_UnparsablePayloadRendersGeneric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statusMock := mocks.NewMockstatusService(ctrl)
	rendererMock := mocks.NewMockRenderer(ctrl)
	a := New(statusMock, rendererMock, opts)

	statusMock.EXPECT().Status(gomock.Any(), gomock.Any()).Times(0)
	rendererMock.EXPECT().Render(gomock.Any(), model.PushMessage{Title: fallbackTitle, Body: fallbackBody}).Return(nil)

	decision, err := a.HandlePush(context.Background(), []byte("\x00garbage"))
	require.NoError(t, err)
	assert.Equal(t, DecisionRender, decision)
}

func TestAgent_HandlePush_ChatMessageIsAcked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statusMock := mocks.NewMockstatusService(ctrl)
	rendererMock := mocks.NewMockRenderer(ctrl)
	a := New(statusMock, rendererMock, opts)

	statusMock.EXPECT().Status(gomock.Any(), "M1").Return(model.DeliveryStatus{}, nil)
	statusMock.EXPECT().Ack(gomock.Any(), "M1", "U1").Return(errors.New("timeout"))
	rendererMock.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil)

	decision, err := a.HandlePush(context.Background(), []byte(`{"title":"Anna","type":"chat-message","messageId":"M1","recipient":"U1"}`))
	a.Wait()

	require.NoError(t, err)
	assert.Equal(t, DecisionRender, decision)
}

func TestAgent_HandlePush_NonChatIsNotAcked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statusMock := mocks.NewMockstatusService(ctrl)
	rendererMock := mocks.NewMockRenderer(ctrl)
	a := New(statusMock, rendererMock, opts)

	statusMock.EXPECT().Status(gomock.Any(), "evt-1").Return(model.DeliveryStatus{}, nil)
	statusMock.EXPECT().Ack(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	rendererMock.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil)

	_, err := a.HandlePush(context.Background(), []byte(`{"type":"mention-activity","eventId":"evt-1","recipient":"U1"}`))
	a.Wait()
	require.NoError(t, err)
}

func TestAgent_HandlePush_ForegroundConfirms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statusMock := mocks.NewMockstatusService(ctrl)
	foregroundMock := mocks.NewMockForeground(ctrl)
	a := New(statusMock, mocks.NewMockRenderer(ctrl), opts)
	a.AttachForeground(foregroundMock)

	foregroundMock.EXPECT().Shown(gomock.Any(), "evt-1").Return(true, nil)
	statusMock.EXPECT().Status(gomock.Any(), gomock.Any()).Times(0)

	decision, err := a.HandlePush(context.Background(), []byte(`{"type":"report-activity","eventId":"evt-1"}`))
	require.NoError(t, err)
	assert.Equal(t, DecisionSuppress, decision)
}

func TestAgent_HandlePush_SlowForegroundFallsBackToStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statusMock := mocks.NewMockstatusService(ctrl)
	rendererMock := mocks.NewMockRenderer(ctrl)
	foregroundMock := mocks.NewMockForeground(ctrl)
	a := New(statusMock, rendererMock, opts)
	a.AttachForeground(foregroundMock)

	foregroundMock.EXPECT().Shown(gomock.Any(), "evt-1").
		DoAndReturn(func(ctx context.Context, _ string) (bool, error) {
			<-ctx.Done()
			return true, ctx.Err()
		})
	statusMock.EXPECT().Status(gomock.Any(), "evt-1").Return(model.DeliveryStatus{}, nil)
	rendererMock.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil)

	start := time.Now()
	decision, err := a.HandlePush(context.Background(), []byte(`{"type":"report-activity","eventId":"evt-1"}`))
	require.NoError(t, err)
	assert.Equal(t, DecisionRender, decision)
	assert.Less(t, time.Since(start), time.Second)
}

func TestAgent_HandlePush_RenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rendererMock := mocks.NewMockRenderer(ctrl)
	a := New(mocks.NewMockstatusService(ctrl), rendererMock, opts)

	rendererMock.EXPECT().Render(gomock.Any(), gomock.Any()).Return(errors.New("permission denied"))

	_, err := a.HandlePush(context.Background(), []byte(`{"title":"x"}`))
	assert.Error(t, err)
}
