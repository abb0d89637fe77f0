package billing

import (
	"context"

	"github.com/google/uuid"
)

// BillRepository is the persistence contract the billing engine depends on.
// Implementations back the one-bill-per-reading and single-settlement
// invariants with storage-level atomicity (unique constraint and
// compare-and-set); the engine checks first but relies on the constraint
// under concurrency.
type BillRepository interface {
	// Insert stores a newly issued bill. A bill already referencing the
	// same reading causes shared.ErrDuplicateBill.
	Insert(ctx context.Context, bill *Bill) error

	// FindByID finds a bill by its ID, returning shared.ErrNotFound if absent
	FindByID(ctx context.Context, id uuid.UUID) (*Bill, error)

	// FindByReadingID finds the bill issued for a reading,
	// returning shared.ErrNotFound if none exists
	FindByReadingID(ctx context.Context, readingID uuid.UUID) (*Bill, error)

	// FindUnpaidByCustomer lists a customer's outstanding bills, oldest first
	FindUnpaidByCustomer(ctx context.Context, customerID uuid.UUID) ([]Bill, error)

	// Settle atomically flips the bill to paid and records the payment:
	// either both become visible together or neither does. A concurrent
	// settlement that wins the compare-and-set causes shared.ErrAlreadyPaid.
	Settle(ctx context.Context, bill *Bill, payment *Payment) error
}

// PaymentRepository provides read access to recorded payments
type PaymentRepository interface {
	// FindByBill lists the payments recorded against a bill
	FindByBill(ctx context.Context, billID uuid.UUID) ([]Payment, error)

	// FindByID finds a payment by its ID, returning shared.ErrNotFound if absent
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
}
