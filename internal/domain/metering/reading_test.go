package metering

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/tariff"
)

func TestNewReading(t *testing.T) {
	meterID := uuid.New()
	customerID := uuid.New()

	t.Run("creates valid reading", func(t *testing.T) {
		recordedAt := time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)
		r, err := NewReading(meterID, customerID, "2026-07", 250, tariff.ClassResidential, recordedAt)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID)
		assert.Equal(t, int64(250), r.UnitsConsumed)
		assert.Equal(t, recordedAt, r.RecordedAt)
	})

	t.Run("rejects negative units", func(t *testing.T) {
		_, err := NewReading(meterID, customerID, "2026-07", -5, tariff.ClassResidential, time.Now())
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		for _, month := range []string{"2026-13", "2026-7", "07-2026", "202607", ""} {
			_, err := NewReading(meterID, customerID, month, 10, tariff.ClassResidential, time.Now())
			assert.Error(t, err, "month %q should be rejected", month)
		}
	})

	t.Run("rejects nil meter", func(t *testing.T) {
		_, err := NewReading(uuid.Nil, customerID, "2026-07", 10, tariff.ClassResidential, time.Now())
		assert.Error(t, err)
	})

	t.Run("defaults empty class to residential", func(t *testing.T) {
		r, err := NewReading(meterID, customerID, "2026-07", 10, "", time.Now())
		require.NoError(t, err)
		assert.Equal(t, tariff.ClassResidential, r.Class)
	})

	t.Run("defaults zero recordedAt to now", func(t *testing.T) {
		r, err := NewReading(meterID, customerID, "2026-07", 10, tariff.ClassCommercial, time.Time{})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), r.RecordedAt, time.Second)
	})
}
