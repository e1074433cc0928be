package services

import (
	"context"

	"speedxpress/internal/notify"

	"go.uber.org/zap"
)

// sendMail delivers a notification after the triggering write is durable.
// Failures are logged and never surface to the caller.
func sendMail(ctx context.Context, n notify.Notifier, logger *zap.Logger, to, subject string, t notify.Template) {
	if n == nil || to == "" {
		return
	}
	if err := n.Send(ctx, to, subject, t); err != nil {
		logger.Error("notification failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return
	}
	logger.Debug("notification sent", zap.String("to", to), zap.String("subject", subject))
}
