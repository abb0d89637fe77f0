package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/utilibill/backend/internal/domain/billing"
	"github.com/utilibill/backend/internal/domain/notification"
	"github.com/utilibill/backend/internal/domain/shared"
)

// BillingAuditHandler writes an audit log line for billing lifecycle events
type BillingAuditHandler struct {
	logger *zap.Logger
}

// NewBillingAuditHandler creates a billing audit handler
func NewBillingAuditHandler(logger *zap.Logger) *BillingAuditHandler {
	return &BillingAuditHandler{logger: logger.Named("audit")}
}

// EventTypes returns the billing lifecycle events this handler consumes
func (h *BillingAuditHandler) EventTypes() []string {
	return []string{"BillIssued", "BillPaid", "ReminderQueued"}
}

// Handle logs the event with its billing details
func (h *BillingAuditHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *billing.BillIssuedEvent:
		h.logger.Info("Bill issued",
			zap.String("bill_id", e.BillID.String()),
			zap.String("reading_id", e.ReadingID.String()),
			zap.String("customer_id", e.CustomerID.String()),
			zap.String("amount", e.Amount.StringFixed(2)),
			zap.Time("due_date", e.DueDate))
	case *billing.BillPaidEvent:
		h.logger.Info("Bill paid",
			zap.String("bill_id", e.BillID.String()),
			zap.String("customer_id", e.CustomerID.String()),
			zap.String("amount", e.Amount.StringFixed(2)),
			zap.Time("paid_at", e.PaidAt))
	case *notification.ReminderQueuedEvent:
		fields := []zap.Field{
			zap.String("notification_id", e.NotificationID.String()),
			zap.String("customer_id", e.CustomerID.String()),
		}
		if e.BillID != nil {
			fields = append(fields, zap.String("bill_id", e.BillID.String()))
		}
		h.logger.Info("Reminder queued", fields...)
	default:
		h.logger.Info("Billing event",
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_id", event.AggregateID().String()))
	}
	return nil
}

var _ shared.EventHandler = (*BillingAuditHandler)(nil)
