package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
	"github.com/aliskhannn/delivery-orchestrator/internal/rabbitmq/queue"
)

//go:generate mockgen -source=pool.go -destination=../mocks/worker/mock.go -package=mocks

type jobConsumer interface {
	Consume(ctx context.Context, out chan<- queue.JobMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.JobMessage, strategy retry.Strategy) model.Result
}

// Pool runs a fixed number of workers, each processing one job at a time.
type Pool struct {
	consumer jobConsumer
	handler  messageHandler
}

func NewPool(c jobConsumer, h messageHandler) *Pool {
	return &Pool{consumer: c, handler: h}
}

// Run blocks until ctx is done and every worker has finished its current job.
func (p *Pool) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan queue.JobMessage, workerCount)

	go func() {
		if err := p.consumer.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					// The job finishes under its own deadline even if shutdown starts meanwhile.
					p.handler.HandleMessage(context.WithoutCancel(ctx), msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("worker pool stopped")
}
