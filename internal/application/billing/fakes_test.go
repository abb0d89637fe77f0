package billing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/utilibill/backend/internal/domain/billing"
	"github.com/utilibill/backend/internal/domain/metering"
	"github.com/utilibill/backend/internal/domain/shared"
)

type fakeReadingRepo struct {
	mu       sync.Mutex
	readings map[uuid.UUID]*metering.Reading
}

func newFakeReadingRepo() *fakeReadingRepo {
	return &fakeReadingRepo{readings: make(map[uuid.UUID]*metering.Reading)}
}

func (r *fakeReadingRepo) Insert(_ context.Context, reading *metering.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readings[reading.ID] = reading
	return nil
}

func (r *fakeReadingRepo) FindByID(_ context.Context, id uuid.UUID) (*metering.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reading, ok := r.readings[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return reading, nil
}

func (r *fakeReadingRepo) FindByMeter(_ context.Context, meterID uuid.UUID, limit int) ([]metering.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []metering.Reading
	for _, reading := range r.readings {
		if reading.MeterID == meterID {
			out = append(out, *reading)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

type fakeBillRepo struct {
	mu        sync.Mutex
	bills     map[uuid.UUID]*billing.Bill
	byReading map[uuid.UUID]uuid.UUID
	payments  map[uuid.UUID]*billing.Payment
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{
		bills:     make(map[uuid.UUID]*billing.Bill),
		byReading: make(map[uuid.UUID]uuid.UUID),
		payments:  make(map[uuid.UUID]*billing.Payment),
	}
}

func (r *fakeBillRepo) Insert(_ context.Context, bill *billing.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byReading[bill.ReadingID]; dup {
		return shared.ErrDuplicateBill
	}
	copied := *bill
	r.bills[bill.ID] = &copied
	r.byReading[bill.ReadingID] = bill.ID
	return nil
}

func (r *fakeBillRepo) FindByID(_ context.Context, id uuid.UUID) (*billing.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bill, ok := r.bills[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *bill
	return &copied, nil
}

func (r *fakeBillRepo) FindByReadingID(_ context.Context, readingID uuid.UUID) (*billing.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	billID, ok := r.byReading[readingID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *r.bills[billID]
	return &copied, nil
}

func (r *fakeBillRepo) FindUnpaidByCustomer(_ context.Context, customerID uuid.UUID) ([]billing.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []billing.Bill
	for _, bill := range r.bills {
		if bill.CustomerID == customerID && !bill.IsPaid {
			out = append(out, *bill)
		}
	}
	return out, nil
}

// Settle mimics the transactional CAS of the real repository: the first
// caller flips the stored bill and records the payment, later callers lose.
func (r *fakeBillRepo) Settle(_ context.Context, bill *billing.Bill, payment *billing.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.bills[bill.ID]
	if !ok {
		return shared.ErrNotFound
	}
	if stored.IsPaid {
		return shared.ErrAlreadyPaid
	}
	copied := *bill
	r.bills[bill.ID] = &copied
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakeBillRepo) FindByBill(_ context.Context, billID uuid.UUID) ([]billing.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []billing.Payment
	for _, p := range r.payments {
		if p.BillID == billID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeBillRepo) FindPaymentByID(_ context.Context, id uuid.UUID) (*billing.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

// paymentRepoView adapts fakeBillRepo to the payment repository contract
type paymentRepoView struct{ bills *fakeBillRepo }

func (v paymentRepoView) FindByBill(ctx context.Context, billID uuid.UUID) ([]billing.Payment, error) {
	return v.bills.FindByBill(ctx, billID)
}

func (v paymentRepoView) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	return v.bills.FindPaymentByID(ctx, id)
}

// recordingPublisher captures published domain events
type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) published() []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.DomainEvent, len(p.events))
	copy(out, p.events)
	return out
}
