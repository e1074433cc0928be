package notify

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const maxSendRetries = 3

// Mailer delivers rendered mail.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}

// SMTPMailer sends through an SMTP relay, retrying transient failures with
// exponential backoff.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSMTPMailer creates a mailer that relays through host:port.
func NewSMTPMailer(host string, port int, username, password, from string, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

// Send delivers mail, retrying transient SMTP failures until ctx is done.
func (m *SMTPMailer) Send(ctx context.Context, mail *Mail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Text)
	msg.AddAlternative("text/html", mail.HTML)

	attempt := 0
	op := func() error {
		attempt++
		if err := m.dialer.DialAndSend(msg); err != nil {
			m.logger.Warn("smtp send failed",
				zap.String("to", mail.To),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return err
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxSendRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return fmt.Errorf("send mail to %s: %w", mail.To, err)
	}
	return nil
}

// LogMailer only logs mail. It is used when no SMTP relay is configured.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a LogMailer writing to logger.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs the recipient and subject of mail.
func (m *LogMailer) Send(_ context.Context, mail *Mail) error {
	m.logger.Info("mail not sent, no smtp relay configured",
		zap.String("to", mail.To),
		zap.String("subject", mail.Subject))
	return nil
}
