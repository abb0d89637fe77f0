package notification

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/utilibill/backend/internal/domain/billing"
	"github.com/utilibill/backend/internal/domain/notification"
	"github.com/utilibill/backend/internal/domain/partner"
	"github.com/utilibill/backend/internal/domain/shared"
)

// ReminderService queues payment reminders and manages the read state of a
// customer's notifications
type ReminderService struct {
	bills     billing.BillRepository
	customers partner.CustomerRepository
	store     notification.Repository
	sender    notification.Sender
	events    shared.EventPublisher
	logger    *zap.Logger
}

// NewReminderService creates a reminder service
func NewReminderService(
	bills billing.BillRepository,
	customers partner.CustomerRepository,
	store notification.Repository,
	sender notification.Sender,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		bills:     bills,
		customers: customers,
		store:     store,
		sender:    sender,
		logger:    logger,
	}
}

// WithEventPublisher attaches an event publisher. Without one, reminder
// events are silently dropped.
func (s *ReminderService) WithEventPublisher(events shared.EventPublisher) *ReminderService {
	s.events = events
	return s
}

// BuildReminder builds and stores a payment reminder for an unpaid bill,
// then hands it to the delivery channel. Delivery is best effort: a send
// failure is logged and the stored notification stands.
func (s *ReminderService) BuildReminder(ctx context.Context, billID uuid.UUID, overrideMessage string) (*notification.Notification, error) {
	bill, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.FindByID(ctx, bill.CustomerID)
	if err != nil {
		return nil, err
	}

	n, err := notification.BuildReminder(bill, overrideMessage)
	if err != nil {
		return nil, err
	}

	if err := s.store.Insert(ctx, n); err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.Publish(ctx, notification.NewReminderQueuedEvent(n)); err != nil {
			s.logger.Warn("Failed to publish reminder queued event", zap.Error(err))
		}
	}

	if err := s.sender.Send(ctx, notification.Delivery{
		RecipientEmail: customer.Email,
		Title:          n.Title,
		Message:        n.Message,
	}); err != nil {
		s.logger.Warn("Reminder delivery failed",
			zap.String("notification_id", n.ID.String()),
			zap.String("bill_id", bill.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("Reminder queued",
		zap.String("notification_id", n.ID.String()),
		zap.String("bill_id", bill.ID.String()),
		zap.String("customer_id", customer.ID.String()))

	return n, nil
}

// MarkRead flips a notification's read flag, scoped to the owning customer.
// A notification that does not exist or belongs to someone else reports
// shared.ErrNotFound either way.
func (s *ReminderService) MarkRead(ctx context.Context, notificationID, customerID uuid.UUID) error {
	return s.store.MarkRead(ctx, notificationID, customerID)
}

// ListForCustomer returns a customer's notifications, newest first
func (s *ReminderService) ListForCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*notification.Notification, error) {
	return s.store.ListByCustomer(ctx, customerID, limit)
}
