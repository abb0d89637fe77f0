package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/shared/valueobject"
)

// Bill is a monetary obligation derived from exactly one meter reading.
// Once issued it is an immutable financial record except for the paid flag,
// which only ApplyPayment flips. Bills are never deleted.
type Bill struct {
	shared.BaseAggregateRoot
	ReadingID  uuid.UUID       `json:"reading_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date"`
	IsPaid     bool            `json:"is_paid"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
}

// NewBill issues a bill for a reading. The amount comes from the charge
// calculator and must be non-negative; the due date policy belongs to the
// caller (a configurable offset from the reading date).
func NewBill(readingID, customerID uuid.UUID, amount valueobject.Money, dueDate time.Time) (*Bill, error) {
	if readingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_READING", "Reading ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Bill amount cannot be negative")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot be empty")
	}

	b := &Bill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ReadingID:         readingID,
		CustomerID:        customerID,
		Amount:            amount.Amount(),
		DueDate:           dueDate,
		IsPaid:            false,
	}

	b.AddDomainEvent(NewBillIssuedEvent(b))

	return b, nil
}

// AmountMoney returns the bill amount as a Money value object
func (b *Bill) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyBDT(b.Amount)
}

// CanAcceptPayment returns true if a payment may still be applied
func (b *Bill) CanAcceptPayment() bool {
	return !b.IsPaid
}

// MarkPaid transitions the bill to its terminal Paid state.
// Fails with ErrAlreadyPaid if the bill is already settled.
func (b *Bill) MarkPaid(paidAt time.Time) error {
	if b.IsPaid {
		return shared.ErrAlreadyPaid
	}

	b.IsPaid = true
	b.PaidAt = &paidAt
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewBillPaidEvent(b))

	return nil
}

// IsOverdue returns true if the bill is unpaid and past its due date
func (b *Bill) IsOverdue() bool {
	return !b.IsPaid && time.Now().After(b.DueDate)
}

// DaysOverdue returns the number of days past due (0 if not overdue)
func (b *Bill) DaysOverdue() int {
	if !b.IsOverdue() {
		return 0
	}
	return int(time.Since(b.DueDate).Hours() / 24)
}

// ShortRef returns the first 8 characters of the bill identifier.
// Used for human-readable references, not uniqueness.
func (b *Bill) ShortRef() string {
	return b.ID.String()[:8]
}
