package delivery

import (
	"context"

	"go.uber.org/zap"

	"github.com/utilibill/backend/internal/domain/notification"
)

// LogSender writes outbound notifications to the log instead of a real
// channel. Stands in until an email or SMS gateway is wired up.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a log-backed notification sender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger.Named("delivery")}
}

// Send implements notification.Sender
func (s *LogSender) Send(_ context.Context, d notification.Delivery) error {
	s.logger.Info("Notification delivered",
		zap.String("recipient", d.RecipientEmail),
		zap.String("title", d.Title),
		zap.String("message", d.Message),
	)
	return nil
}
