package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/config"
	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

const (
	contentType    = "application/json"
	reconsumeDelay = time.Second
)

// deliverySource is the consuming side of the broker channel.
type deliverySource interface {
	ConsumeWithRetry(msgChan chan []byte, strategy retry.Strategy) error
}

// JobMessage is a notification job on the wire. Attempt counts earlier deliveries.
type JobMessage struct {
	model.NotificationJob
	Attempt int `json:"attempt,omitempty"`
}

// NotificationQueue owns the job topology: the main queue, a delay queue that
// dead-letters back into it, and a dead-letter queue for jobs given up on.
type NotificationQueue struct {
	Publisher *rabbitmq.Publisher
	consumer  deliverySource
	cfg       config.RabbitMQ

	reconsumeDelay time.Duration
}

func NewNotificationQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ) (*NotificationQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	dlq, err := qm.DeclareQueue(cfg.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    exchange.Name(),
		"x-dead-letter-routing-key": cfg.RoutingKey,
		"x-message-ttl":             int32(cfg.RetryDelay.Milliseconds()),
	}

	retryQ, err := qm.DeclareQueue(cfg.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    exchange.Name(),
		"x-dead-letter-routing-key": cfg.DLQRoutingKey,
	}

	mainQ, err := qm.DeclareQueue(cfg.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	bindings := []struct{ queue, key string }{
		{mainQ.Name, cfg.RoutingKey},
		{retryQ.Name, cfg.RetryRoutingKey},
		{dlq.Name, cfg.DLQRoutingKey},
	}
	for _, b := range bindings {
		if err := ch.QueueBind(b.queue, b.key, exchange.Name(), false, nil); err != nil {
			return nil, fmt.Errorf("failed to bind queue %s to the exchange: %w", b.queue, err)
		}
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &NotificationQueue{Publisher: pub, consumer: cons, cfg: cfg, reconsumeDelay: reconsumeDelay}, nil
}

// Publish enqueues a new job.
func (q *NotificationQueue) Publish(msg JobMessage, strategy retry.Strategy) error {
	return q.publish(msg, q.cfg.RoutingKey, strategy)
}

// PublishRetry parks a job in the delay queue; it comes back to the main queue after the retry delay.
func (q *NotificationQueue) PublishRetry(msg JobMessage, strategy retry.Strategy) error {
	return q.publish(msg, q.cfg.RetryRoutingKey, strategy)
}

// PublishDead moves a job to the dead-letter queue.
func (q *NotificationQueue) PublishDead(msg JobMessage, strategy retry.Strategy) error {
	return q.publish(msg, q.cfg.DLQRoutingKey, strategy)
}

func (q *NotificationQueue) publish(msg JobMessage, routingKey string, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, routingKey, contentType, strategy)
}

// Consume decodes jobs from the main queue into out until ctx is done.
// When the broker side stops delivering, consumption is restarted after a pause.
func (q *NotificationQueue) Consume(ctx context.Context, out chan<- JobMessage, strategy retry.Strategy) error {
	for {
		err := q.consumeOnce(ctx, out, strategy)
		if ctx.Err() != nil {
			return nil
		}

		zlog.Logger.Error().Err(err).Dur("pause", q.reconsumeDelay).Msg("consumption stopped unexpectedly, re-consuming")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(q.reconsumeDelay):
		}
	}
}

// consumeOnce runs one broker subscription. It returns when the subscription ends or ctx is done.
func (q *NotificationQueue) consumeOnce(ctx context.Context, out chan<- JobMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)
	errChan := make(chan error, 1)

	go func() {
		errChan <- q.consumer.ConsumeWithRetry(msgChan, strategy)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errChan:
			if err == nil {
				err = fmt.Errorf("delivery channel closed")
			}
			return err
		case m, ok := <-msgChan:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}

			msg, err := Decode(m)
			if err != nil {
				zlog.Logger.Error().Err(err).Bool("lost", true).Msg("dropping undecodable job")
				continue
			}

			select {
			case out <- msg:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Decode parses a wire message.
func Decode(body []byte) (JobMessage, error) {
	var msg JobMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return JobMessage{}, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	return msg, nil
}
