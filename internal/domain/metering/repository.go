package metering

import (
	"context"

	"github.com/google/uuid"
)

// ReadingRepository is the persistence contract for meter readings
type ReadingRepository interface {
	// Insert stores a new reading. Readings are never updated.
	Insert(ctx context.Context, reading *Reading) error

	// FindByID finds a reading by its ID, returning shared.ErrNotFound if absent
	FindByID(ctx context.Context, id uuid.UUID) (*Reading, error)

	// FindByMeter lists the readings recorded for a meter, newest first
	FindByMeter(ctx context.Context, meterID uuid.UUID, limit int) ([]Reading, error)
}
