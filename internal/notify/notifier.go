package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// QueueName is the broker queue carrying rendered notification mail.
const QueueName = "notification_queue"

// Notifier sends one templated email. Callers treat failures as
// non-fatal: the mutation that triggered the email has already happened.
type Notifier interface {
	Send(ctx context.Context, to, subject string, t Template) error
}

// DirectNotifier renders and delivers in the caller's goroutine.
type DirectNotifier struct {
	renderer *Renderer
	mailer   Mailer
}

// NewDirectNotifier creates a notifier that delivers synchronously.
func NewDirectNotifier(renderer *Renderer, mailer Mailer) *DirectNotifier {
	return &DirectNotifier{renderer: renderer, mailer: mailer}
}

// Send renders t and hands it to the mailer.
func (n *DirectNotifier) Send(ctx context.Context, to, subject string, t Template) error {
	mail, err := n.renderer.Render(to, subject, t)
	if err != nil {
		return err
	}
	return n.mailer.Send(ctx, mail)
}

// Publisher publishes a JSON message onto a named queue.
type Publisher interface {
	PublishJSON(ctx context.Context, queue string, v interface{}) error
}

// QueueNotifier renders in the caller's goroutine and hands the mail to the
// broker. Delivery happens in the consumer returned by Deliverer.
type QueueNotifier struct {
	renderer  *Renderer
	publisher Publisher
}

// NewQueueNotifier creates a notifier that publishes rendered mail.
func NewQueueNotifier(renderer *Renderer, publisher Publisher) *QueueNotifier {
	return &QueueNotifier{renderer: renderer, publisher: publisher}
}

// Send renders t and publishes it for the Deliverer consumer.
func (n *QueueNotifier) Send(ctx context.Context, to, subject string, t Template) error {
	mail, err := n.renderer.Render(to, subject, t)
	if err != nil {
		return err
	}
	if err := n.publisher.PublishJSON(ctx, QueueName, mail); err != nil {
		return fmt.Errorf("queue mail to %s: %w", to, err)
	}
	return nil
}

// Deliverer returns the queue handler that sends queued mail and logs the
// outcome.
func Deliverer(mailer Mailer, logger *zap.Logger) func(ctx context.Context, body []byte) error {
	return func(ctx context.Context, body []byte) error {
		var mail Mail
		if err := json.Unmarshal(body, &mail); err != nil {
			return fmt.Errorf("decode queued mail: %w", err)
		}
		if err := mailer.Send(ctx, &mail); err != nil {
			return err
		}
		logger.Info("queued mail delivered", zap.String("to", mail.To), zap.String("subject", mail.Subject))
		return nil
	}
}
