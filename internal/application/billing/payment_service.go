package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/utilibill/backend/internal/domain/billing"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/shared/valueobject"
)

// PaymentService settles bills
type PaymentService struct {
	bills    billing.BillRepository
	payments billing.PaymentRepository
	events   shared.EventPublisher
	logger   *zap.Logger
}

// NewPaymentService creates a payment service
func NewPaymentService(
	bills billing.BillRepository,
	payments billing.PaymentRepository,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		bills:    bills,
		payments: payments,
		logger:   logger,
	}
}

// WithEventPublisher attaches a publisher for settlement events
func (s *PaymentService) WithEventPublisher(events shared.EventPublisher) *PaymentService {
	s.events = events
	return s
}

// ApplyPayment settles a bill with a payment of at least the billed amount.
// Overpayment is accepted and recorded in full; no change is returned and no
// credit carries forward. Settling is atomic: either the bill flips to paid
// and the payment is stored, or neither happens. Two concurrent payments for
// the same bill produce exactly one success and one shared.ErrAlreadyPaid.
func (s *PaymentService) ApplyPayment(ctx context.Context, billID uuid.UUID, amount valueobject.Money) (*billing.Payment, error) {
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidInput
	}

	bill, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.IsPaid {
		return nil, shared.ErrAlreadyPaid
	}

	covered, err := amount.GreaterThanOrEqual(bill.AmountMoney())
	if err != nil {
		return nil, err
	}
	if !covered {
		return nil, shared.ErrInsufficientPayment
	}

	now := time.Now()
	payment, err := billing.NewPayment(bill.ID, amount, now)
	if err != nil {
		return nil, err
	}
	if err := bill.MarkPaid(now); err != nil {
		return nil, err
	}

	if err := s.bills.Settle(ctx, bill, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Bill settled",
		zap.String("bill_id", bill.ID.String()),
		zap.String("payment_id", payment.ID.String()),
		zap.String("amount", amount.StringFixed(2)))

	if s.events != nil {
		if err := s.events.Publish(ctx, billing.NewBillPaidEvent(bill)); err != nil {
			s.logger.Warn("Failed to publish bill paid event", zap.Error(err))
		}
	}

	return payment, nil
}

// ListPayments lists the payments recorded against a bill
func (s *PaymentService) ListPayments(ctx context.Context, billID uuid.UUID) ([]billing.Payment, error) {
	return s.payments.FindByBill(ctx, billID)
}
