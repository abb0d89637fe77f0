package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/shared/valueobject"
)

// Payment is a monetary settlement applied against a bill.
// Immutable after creation; the engine accepts at most one per bill.
type Payment struct {
	shared.BaseEntity
	BillID uuid.UUID       `json:"bill_id"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt time.Time       `json:"paid_at"`
}

// NewPayment creates a payment record for a bill.
// The settlement policy (exact-or-overpay) is enforced by the payment
// service against the bill amount; this constructor only validates shape.
func NewPayment(billID uuid.UUID, amount valueobject.Money, paidAt time.Time) (*Payment, error) {
	if billID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BILL", "Bill ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	return &Payment{
		BaseEntity: shared.NewBaseEntity(),
		BillID:     billID,
		Amount:     amount.Amount(),
		PaidAt:     paidAt,
	}, nil
}

// AmountMoney returns the payment amount as a Money value object
func (p *Payment) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyBDT(p.Amount)
}
