package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	// amqp channels are not safe for concurrent publishing.
	mu     sync.Mutex
	logger *zap.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
	// Queues are declared durable when the client connects.
	Queues []string
}

// Handler processes one delivery. A returned error drops the message.
type Handler func(ctx context.Context, body []byte) error

// NewClient connects to RabbitMQ, opens a channel and declares cfg.Queues.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, q := range cfg.Queues {
		if err := declare(ch, q); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	logger.Info("rabbitmq client connected", zap.Strings("queues", cfg.Queues))

	return &Client{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

func declare(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", queue, err)
	}
	return nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishJSON marshals v and publishes it as a persistent message on queue
// through the default exchange.
func (c *Client) PublishJSON(ctx context.Context, queue string, v interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message for %s: %w", queue, err)
	}

	c.mu.Lock()
	err = c.channel.Publish(
		"",    // default exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("message published", zap.String("queue", queue), zap.Int("bytes", len(body)))
	return nil
}

// Consume starts a goroutine that feeds deliveries on queue to handler until
// ctx is cancelled or the channel closes. Successful deliveries are acked;
// failed ones are nacked without requeue.
func (c *Client) Consume(ctx context.Context, queue string, handler Handler) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}
	if err := declare(c.channel, queue); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("consumer started", zap.String("queue", queue))

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("consumer stopped", zap.String("queue", queue))
				return
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Warn("delivery channel closed", zap.String("queue", queue))
					return
				}
				c.dispatch(ctx, queue, msg, handler)
			}
		}
	}()

	return nil
}

func (c *Client) dispatch(ctx context.Context, queue string, msg amqp.Delivery, handler Handler) {
	if err := handler(ctx, msg.Body); err != nil {
		c.logger.Error("message processing failed",
			zap.String("queue", queue),
			zap.Uint64("deliveryTag", msg.DeliveryTag),
			zap.Error(err))
		if nackErr := msg.Nack(false, false); nackErr != nil {
			c.logger.Error("nack failed", zap.Uint64("deliveryTag", msg.DeliveryTag), zap.Error(nackErr))
		}
		return
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		c.logger.Error("ack failed", zap.Uint64("deliveryTag", msg.DeliveryTag), zap.Error(ackErr))
	}
}
