package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/delivery-orchestrator/internal/mocks/worker"
	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/rabbitmq/queue"
)

func TestPool_Run_HandlesEveryMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockjobConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	p := NewPool(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msgs := []queue.JobMessage{
		{NotificationJob: model.NotificationJob{ID: "evt-1"}},
		{NotificationJob: model.NotificationJob{ID: "evt-2"}},
		{NotificationJob: model.NotificationJob{ID: "evt-3"}},
	}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, out chan<- queue.JobMessage, _ retry.Strategy) error {
			for _, m := range msgs {
				out <- m
			}
			<-ctx.Done()
			return nil
		},
	)

	handled := make(chan string, len(msgs))
	mockHandler.EXPECT().HandleMessage(gomock.Any(), gomock.Any(), strategy).
		DoAndReturn(func(_ context.Context, msg queue.JobMessage, _ retry.Strategy) model.Result {
			handled <- msg.ID
			return model.ResultSuccess
		}).Times(len(msgs))

	done := make(chan struct{})
	go func() {
		p.Run(ctx, strategy, 2)
		close(done)
	}()

	seen := map[string]bool{}
	for range msgs {
		select {
		case id := <-handled:
			seen[id] = true
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for handler")
		}
	}
	require.Len(t, seen, 3)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop")
	}
}

func TestPool_Run_JobContextSurvivesShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockjobConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	p := NewPool(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	strategy := retry.Strategy{}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, out chan<- queue.JobMessage, _ retry.Strategy) error {
			out <- queue.JobMessage{NotificationJob: model.NotificationJob{ID: "evt-1"}}
			<-ctx.Done()
			return nil
		},
	)

	mockHandler.EXPECT().HandleMessage(gomock.Any(), gomock.Any(), strategy).
		DoAndReturn(func(jobCtx context.Context, _ queue.JobMessage, _ retry.Strategy) model.Result {
			cancel()
			assert.NoError(t, jobCtx.Err())
			return model.ResultSuccess
		})

	done := make(chan struct{})
	go func() {
		p.Run(ctx, strategy, 1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop")
	}
}
