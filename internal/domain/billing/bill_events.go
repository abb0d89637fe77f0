package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/utilibill/backend/internal/domain/shared"
)

// BillIssuedEvent is raised when a bill is generated for a reading
type BillIssuedEvent struct {
	shared.BaseDomainEvent
	BillID     uuid.UUID       `json:"bill_id"`
	ReadingID  uuid.UUID       `json:"reading_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date"`
}

// EventType returns the event type name
func (e *BillIssuedEvent) EventType() string {
	return "BillIssued"
}

// NewBillIssuedEvent creates a new BillIssuedEvent
func NewBillIssuedEvent(b *Bill) *BillIssuedEvent {
	return &BillIssuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("BillIssued", "Bill", b.ID),
		BillID:          b.ID,
		ReadingID:       b.ReadingID,
		CustomerID:      b.CustomerID,
		Amount:          b.Amount,
		DueDate:         b.DueDate,
	}
}

// BillPaidEvent is raised when a bill reaches its terminal Paid state
type BillPaidEvent struct {
	shared.BaseDomainEvent
	BillID     uuid.UUID       `json:"bill_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     time.Time       `json:"paid_at"`
}

// EventType returns the event type name
func (e *BillPaidEvent) EventType() string {
	return "BillPaid"
}

// NewBillPaidEvent creates a new BillPaidEvent
func NewBillPaidEvent(b *Bill) *BillPaidEvent {
	paidAt := time.Now()
	if b.PaidAt != nil {
		paidAt = *b.PaidAt
	}
	return &BillPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("BillPaid", "Bill", b.ID),
		BillID:          b.ID,
		CustomerID:      b.CustomerID,
		Amount:          b.Amount,
		PaidAt:          paidAt,
	}
}
