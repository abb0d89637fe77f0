package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilibill/backend/internal/domain/metering"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/tariff"
)

func newTestReading(t *testing.T, meterID uuid.UUID, month string, recordedAt time.Time) *metering.Reading {
	t.Helper()
	reading, err := metering.NewReading(meterID, uuid.New(), month, 150, tariff.ClassResidential, recordedAt)
	require.NoError(t, err)
	return reading
}

func TestGormReadingRepository_InsertAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormReadingRepository(db)
	ctx := context.Background()

	reading := newTestReading(t, uuid.New(), "2026-07", time.Now().Truncate(time.Second))
	require.NoError(t, repo.Insert(ctx, reading))

	found, err := repo.FindByID(ctx, reading.ID)
	require.NoError(t, err)
	assert.Equal(t, reading.MeterID, found.MeterID)
	assert.Equal(t, "2026-07", found.Month)
	assert.Equal(t, int64(150), found.UnitsConsumed)
	assert.Equal(t, tariff.ClassResidential, found.Class)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormReadingRepository_FindByMeter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormReadingRepository(db)
	ctx := context.Background()

	meterID := uuid.New()
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	june := newTestReading(t, meterID, "2026-06", base)
	july := newTestReading(t, meterID, "2026-07", base.AddDate(0, 1, 0))
	august := newTestReading(t, meterID, "2026-08", base.AddDate(0, 2, 0))
	other := newTestReading(t, uuid.New(), "2026-07", base)

	for _, r := range []*metering.Reading{june, july, august, other} {
		require.NoError(t, repo.Insert(ctx, r))
	}

	t.Run("newest first", func(t *testing.T) {
		readings, err := repo.FindByMeter(ctx, meterID, 0)
		require.NoError(t, err)
		require.Len(t, readings, 3)
		assert.Equal(t, august.ID, readings[0].ID)
		assert.Equal(t, july.ID, readings[1].ID)
		assert.Equal(t, june.ID, readings[2].ID)
	})

	t.Run("limit applies", func(t *testing.T) {
		readings, err := repo.FindByMeter(ctx, meterID, 2)
		require.NoError(t, err)
		require.Len(t, readings, 2)
		assert.Equal(t, august.ID, readings[0].ID)
	})

	t.Run("unknown meter yields empty list", func(t *testing.T) {
		readings, err := repo.FindByMeter(ctx, uuid.New(), 0)
		require.NoError(t, err)
		assert.Empty(t, readings)
	})
}
