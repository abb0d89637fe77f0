package billing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/utilibill/backend/internal/domain/billing"
	"github.com/utilibill/backend/internal/domain/metering"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/tariff"
)

// DefaultDueDays is how long after the reading date a bill falls due
const DefaultDueDays = 15

// BillService issues bills for meter readings
type BillService struct {
	readings   metering.ReadingRepository
	bills      billing.BillRepository
	calculator *tariff.Calculator
	dueDays    int
	events     shared.EventPublisher
	logger     *zap.Logger
}

// NewBillService creates a bill service. dueDays <= 0 falls back to the
// default billing period.
func NewBillService(
	readings metering.ReadingRepository,
	bills billing.BillRepository,
	calculator *tariff.Calculator,
	dueDays int,
	logger *zap.Logger,
) *BillService {
	if dueDays <= 0 {
		dueDays = DefaultDueDays
	}
	return &BillService{
		readings:   readings,
		bills:      bills,
		calculator: calculator,
		dueDays:    dueDays,
		logger:     logger,
	}
}

// WithEventPublisher attaches a publisher for bill lifecycle events
func (s *BillService) WithEventPublisher(events shared.EventPublisher) *BillService {
	s.events = events
	return s
}

// GenerateBill issues exactly one bill for a reading. A second call for the
// same reading returns shared.ErrDuplicateBill; the uniqueness is backed by
// a constraint on reading_id, so concurrent calls cannot both succeed.
func (s *BillService) GenerateBill(ctx context.Context, readingID uuid.UUID) (*billing.Bill, error) {
	reading, err := s.readings.FindByID(ctx, readingID)
	if err != nil {
		return nil, err
	}

	// Cheap pre-check; the insert constraint is the real guard.
	if existing, err := s.bills.FindByReadingID(ctx, readingID); err == nil && existing != nil {
		return nil, shared.ErrDuplicateBill
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	amount, err := s.calculator.ComputeCharge(reading.UnitsConsumed, reading.Class)
	if err != nil {
		return nil, err
	}

	dueDate := reading.RecordedAt.AddDate(0, 0, s.dueDays)
	bill, err := billing.NewBill(reading.ID, reading.CustomerID, amount, dueDate)
	if err != nil {
		return nil, err
	}

	if err := s.bills.Insert(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.Info("Bill issued",
		zap.String("bill_id", bill.ID.String()),
		zap.String("reading_id", reading.ID.String()),
		zap.String("amount", amount.StringFixed(2)),
		zap.Time("due_date", dueDate))

	if s.events != nil {
		if err := s.events.Publish(ctx, billing.NewBillIssuedEvent(bill)); err != nil {
			s.logger.Warn("Failed to publish bill issued event", zap.Error(err))
		}
	}

	return bill, nil
}

// GetBill loads a bill by ID
func (s *BillService) GetBill(ctx context.Context, billID uuid.UUID) (*billing.Bill, error) {
	return s.bills.FindByID(ctx, billID)
}

// ListUnpaid lists a customer's outstanding bills, oldest first
func (s *BillService) ListUnpaid(ctx context.Context, customerID uuid.UUID) ([]billing.Bill, error) {
	return s.bills.FindUnpaidByCustomer(ctx, customerID)
}
