package tariff

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/utilibill/backend/internal/domain/shared"
)

// ConnectionClass represents the customer category that determines
// which tariff schedule applies to a meter reading.
type ConnectionClass string

const (
	ClassResidential ConnectionClass = "residential"
	ClassCommercial  ConnectionClass = "commercial"
)

// IsValid checks if the connection class is one of the known classes
func (c ConnectionClass) IsValid() bool {
	return c == ClassResidential || c == ClassCommercial
}

// String returns the string representation of the connection class
func (c ConnectionClass) String() string {
	return string(c)
}

// Band is a contiguous range of consumption units billed at a single rate.
// UpTo is the inclusive upper threshold in units; nil means unbounded.
type Band struct {
	UpTo *int64          `json:"up_to"`
	Rate decimal.Decimal `json:"rate"`
}

// IsUnbounded returns true if the band has no upper threshold
func (b Band) IsUnbounded() bool {
	return b.UpTo == nil
}

// Schedule is the complete rate schedule for one connection class:
// an ordered list of consumption bands plus the flat and tax components.
type Schedule struct {
	Class       ConnectionClass `json:"class"`
	Bands       []Band          `json:"bands"`
	FixedCharge decimal.Decimal `json:"fixed_charge"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// NewSchedule creates a validated tariff schedule.
// Bands must have strictly increasing thresholds and exactly the last band
// must be unbounded, so that every consumption level maps to a rate.
func NewSchedule(class ConnectionClass, bands []Band, fixedCharge, taxRate decimal.Decimal) (*Schedule, error) {
	if class == "" {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "Connection class cannot be empty")
	}
	if len(bands) == 0 {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "Schedule must have at least one band")
	}
	if fixedCharge.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "Fixed charge cannot be negative")
	}
	if taxRate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "Tax rate must be a positive multiplier")
	}

	var prev int64
	for i, band := range bands {
		if band.Rate.IsNegative() {
			return nil, shared.NewDomainError("INVALID_SCHEDULE", fmt.Sprintf("Band %d has a negative rate", i))
		}
		last := i == len(bands)-1
		if last {
			if !band.IsUnbounded() {
				return nil, shared.NewDomainError("INVALID_SCHEDULE", "Last band must be unbounded")
			}
			continue
		}
		if band.IsUnbounded() {
			return nil, shared.NewDomainError("INVALID_SCHEDULE", "Only the last band may be unbounded")
		}
		if *band.UpTo <= prev {
			return nil, shared.NewDomainError("INVALID_SCHEDULE", fmt.Sprintf("Band %d threshold %d does not increase", i, *band.UpTo))
		}
		prev = *band.UpTo
	}

	return &Schedule{
		Class:       class,
		Bands:       bands,
		FixedCharge: fixedCharge,
		TaxRate:     taxRate,
	}, nil
}

// UpToUnits is a helper for constructing bounded bands
func UpToUnits(units int64) *int64 {
	return &units
}
