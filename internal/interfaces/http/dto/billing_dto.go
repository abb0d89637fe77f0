package dto

import (
	"time"

	"github.com/utilibill/backend/internal/domain/billing"
	"github.com/utilibill/backend/internal/domain/metering"
	"github.com/utilibill/backend/internal/domain/notification"
)

// RecordReadingRequest is the payload for submitting a meter reading
type RecordReadingRequest struct {
	MeterID       string `json:"meter_id" binding:"required,uuid"`
	CustomerID    string `json:"customer_id" binding:"required,uuid"`
	Month         string `json:"month" binding:"required"`
	UnitsConsumed int64  `json:"units_consumed" binding:"min=0"`
	Class         string `json:"connection_type" binding:"omitempty,oneof=residential commercial"`
}

// ReadingResponse is the API shape of a meter reading
type ReadingResponse struct {
	ID            string    `json:"id"`
	MeterID       string    `json:"meter_id"`
	CustomerID    string    `json:"customer_id"`
	Month         string    `json:"month"`
	UnitsConsumed int64     `json:"units_consumed"`
	Class         string    `json:"connection_type"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// NewReadingResponse maps a domain reading to its API shape
func NewReadingResponse(r *metering.Reading) ReadingResponse {
	return ReadingResponse{
		ID:            r.ID.String(),
		MeterID:       r.MeterID.String(),
		CustomerID:    r.CustomerID.String(),
		Month:         r.Month,
		UnitsConsumed: r.UnitsConsumed,
		Class:         string(r.Class),
		RecordedAt:    r.RecordedAt,
	}
}

// BillResponse is the API shape of a bill
type BillResponse struct {
	ID         string     `json:"id"`
	ReadingID  string     `json:"reading_id"`
	CustomerID string     `json:"customer_id"`
	Amount     string     `json:"amount"`
	Currency   string     `json:"currency"`
	DueDate    time.Time  `json:"due_date"`
	IsPaid     bool       `json:"is_paid"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
}

// NewBillResponse maps a domain bill to its API shape
func NewBillResponse(b *billing.Bill) BillResponse {
	money := b.AmountMoney()
	return BillResponse{
		ID:         b.ID.String(),
		ReadingID:  b.ReadingID.String(),
		CustomerID: b.CustomerID.String(),
		Amount:     money.StringFixed(2),
		Currency:   string(money.Currency()),
		DueDate:    b.DueDate,
		IsPaid:     b.IsPaid,
		PaidAt:     b.PaidAt,
	}
}

// ApplyPaymentRequest is the payload for paying a bill. Amount travels as a
// decimal string to avoid float rounding on the wire.
type ApplyPaymentRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// PaymentResponse is the API shape of a recorded payment
type PaymentResponse struct {
	ID     string    `json:"id"`
	BillID string    `json:"bill_id"`
	Amount string    `json:"amount"`
	PaidAt time.Time `json:"paid_at"`
}

// NewPaymentResponse maps a domain payment to its API shape
func NewPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:     p.ID.String(),
		BillID: p.BillID.String(),
		Amount: p.Amount.StringFixed(2),
		PaidAt: p.PaidAt,
	}
}

// BuildReminderRequest is the payload for queueing a payment reminder.
// An empty message selects the generated default.
type BuildReminderRequest struct {
	Message string `json:"message"`
}

// MarkReadRequest identifies the customer marking a notification read
type MarkReadRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
}

// NotificationResponse is the API shape of a notification
type NotificationResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	BillID     *string   `json:"bill_id,omitempty"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	SentAt     time.Time `json:"sent_at"`
}

// NewNotificationResponse maps a domain notification to its API shape
func NewNotificationResponse(n *notification.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:         n.ID.String(),
		CustomerID: n.CustomerID.String(),
		Title:      n.Title,
		Message:    n.Message,
		IsRead:     n.IsRead,
		SentAt:     n.SentAt,
	}
	if n.BillID != nil {
		billID := n.BillID.String()
		resp.BillID = &billID
	}
	return resp
}
