package notification

import (
	"github.com/google/uuid"
	"github.com/utilibill/backend/internal/domain/shared"
)

// ReminderQueuedEvent is raised when a payment reminder is stored for a
// customer
type ReminderQueuedEvent struct {
	shared.BaseDomainEvent
	NotificationID uuid.UUID  `json:"notification_id"`
	CustomerID     uuid.UUID  `json:"customer_id"`
	BillID         *uuid.UUID `json:"bill_id,omitempty"`
}

// EventType returns the event type name
func (e *ReminderQueuedEvent) EventType() string {
	return "ReminderQueued"
}

// NewReminderQueuedEvent creates a new ReminderQueuedEvent
func NewReminderQueuedEvent(n *Notification) *ReminderQueuedEvent {
	return &ReminderQueuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("ReminderQueued", "Notification", n.ID),
		NotificationID:  n.ID,
		CustomerID:      n.CustomerID,
		BillID:          n.BillID,
	}
}
