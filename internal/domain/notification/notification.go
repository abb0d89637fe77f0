package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/utilibill/backend/internal/domain/shared"
)

// Notification is a message queued for a customer, typically a payment
// reminder referencing a bill. Mutated only to flip the read flag.
type Notification struct {
	shared.BaseEntity
	CustomerID uuid.UUID  `json:"customer_id"`
	BillID     *uuid.UUID `json:"bill_id,omitempty"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	IsRead     bool       `json:"is_read"`
	SentAt     time.Time  `json:"sent_at"`
}

// NewNotification creates an unread notification for a customer
func NewNotification(customerID uuid.UUID, billID *uuid.UUID, title, message string) (*Notification, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Title cannot be empty")
	}
	if message == "" {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Message cannot be empty")
	}

	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		BillID:     billID,
		Title:      title,
		Message:    message,
		IsRead:     false,
		SentAt:     time.Now(),
	}, nil
}

// MarkRead flips the read flag. Ownership is enforced at the persistence
// boundary; this only records the state change.
func (n *Notification) MarkRead() {
	if n.IsRead {
		return
	}
	n.IsRead = true
	n.UpdatedAt = time.Now()
}

// BelongsTo returns true if the notification is owned by the given customer
func (n *Notification) BelongsTo(customerID uuid.UUID) bool {
	return n.CustomerID == customerID
}
