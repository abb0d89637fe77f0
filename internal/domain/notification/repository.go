package notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists notifications
type Repository interface {
	// Insert stores a new notification
	Insert(ctx context.Context, n *Notification) error

	// FindByID loads a notification by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)

	// ListByCustomer returns a customer's notifications, newest first
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*Notification, error)

	// MarkRead flips the read flag for a notification owned by the given
	// customer. Returns shared.ErrNotFound when the notification does not
	// exist or belongs to another customer; the caller cannot tell the
	// two cases apart.
	MarkRead(ctx context.Context, id, customerID uuid.UUID) error
}
