package tariff

import (
	"github.com/shopspring/decimal"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/shared/valueobject"
)

// Calculator computes the monetary charge for metered consumption under
// progressive banding. It is a pure function over its inputs: no I/O, safe
// for unbounded concurrent use, and memoizable by (units, class).
type Calculator struct {
	provider ScheduleProvider
}

// NewCalculator creates a charge calculator backed by the given schedule provider
func NewCalculator(provider ScheduleProvider) *Calculator {
	return &Calculator{provider: provider}
}

// ComputeCharge maps units consumed and a connection class to a final bill
// amount. Each band bills the units falling inside (previousThreshold, upTo];
// units beyond the last finite threshold bill at the unbounded band's rate.
// The band subtotal plus the fixed charge is multiplied by the tax rate and
// rounded to 2 decimal places, half-away-from-zero.
//
// Zero consumption still incurs the taxed fixed charge. Negative consumption
// is a contract violation and fails with ErrInvalidInput.
func (c *Calculator) ComputeCharge(unitsConsumed int64, class ConnectionClass) (valueobject.Money, error) {
	if unitsConsumed < 0 {
		return valueobject.Money{}, shared.ErrInvalidInput
	}

	schedule := c.provider.ScheduleFor(class)

	subtotal := schedule.FixedCharge
	remaining := unitsConsumed
	var prev int64
	for _, band := range schedule.Bands {
		if remaining <= 0 {
			break
		}
		inBand := remaining
		if !band.IsUnbounded() {
			if width := *band.UpTo - prev; inBand > width {
				inBand = width
			}
			prev = *band.UpTo
		}
		subtotal = subtotal.Add(band.Rate.Mul(decimal.NewFromInt(inBand)))
		remaining -= inBand
	}

	total := subtotal.Mul(schedule.TaxRate).Round(2)
	return valueobject.NewMoneyBDT(total), nil
}
