package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/utilibill/backend/internal/domain/metering"
	"github.com/utilibill/backend/internal/domain/tariff"
)

// RecordReadingInput carries a meter reading submission
type RecordReadingInput struct {
	MeterID       uuid.UUID
	CustomerID    uuid.UUID
	Month         string // YYYY-MM
	UnitsConsumed int64
	Class         tariff.ConnectionClass
	RecordedAt    time.Time
}

// ReadingService records meter readings. Readings are append-only; a
// correction is a new reading, never an update.
type ReadingService struct {
	readings metering.ReadingRepository
	logger   *zap.Logger
}

// NewReadingService creates a reading service
func NewReadingService(readings metering.ReadingRepository, logger *zap.Logger) *ReadingService {
	return &ReadingService{readings: readings, logger: logger}
}

// RecordReading validates and stores a meter reading
func (s *ReadingService) RecordReading(ctx context.Context, input RecordReadingInput) (*metering.Reading, error) {
	reading, err := metering.NewReading(
		input.MeterID,
		input.CustomerID,
		input.Month,
		input.UnitsConsumed,
		input.Class,
		input.RecordedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := s.readings.Insert(ctx, reading); err != nil {
		return nil, err
	}

	s.logger.Info("Reading recorded",
		zap.String("reading_id", reading.ID.String()),
		zap.String("meter_id", reading.MeterID.String()),
		zap.String("month", reading.Month),
		zap.Int64("units", reading.UnitsConsumed))

	return reading, nil
}

// GetReading loads a reading by ID
func (s *ReadingService) GetReading(ctx context.Context, id uuid.UUID) (*metering.Reading, error) {
	return s.readings.FindByID(ctx, id)
}
