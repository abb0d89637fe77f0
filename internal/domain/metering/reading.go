package metering

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/tariff"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Reading is a recorded consumption measurement for one meter and billing
// period. Readings are immutable once created; billing derives everything
// else from them.
type Reading struct {
	shared.BaseEntity
	MeterID       uuid.UUID              `json:"meter_id"`
	CustomerID    uuid.UUID              `json:"customer_id"`
	Month         string                 `json:"month"` // YYYY-MM
	UnitsConsumed int64                  `json:"units_consumed"`
	Class         tariff.ConnectionClass `json:"connection_type"`
	RecordedAt    time.Time              `json:"recorded_at"`
}

// NewReading creates a validated meter reading
func NewReading(meterID, customerID uuid.UUID, month string, unitsConsumed int64, class tariff.ConnectionClass, recordedAt time.Time) (*Reading, error) {
	if meterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_METER", "Meter ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if !monthPattern.MatchString(month) {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must be in YYYY-MM format")
	}
	if unitsConsumed < 0 {
		return nil, shared.ErrInvalidInput
	}
	if class == "" {
		class = tariff.ClassResidential
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	return &Reading{
		BaseEntity:    shared.NewBaseEntity(),
		MeterID:       meterID,
		CustomerID:    customerID,
		Month:         month,
		UnitsConsumed: unitsConsumed,
		Class:         class,
		RecordedAt:    recordedAt,
	}, nil
}
