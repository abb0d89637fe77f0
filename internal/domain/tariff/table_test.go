package tariff

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("requires residential schedule", func(t *testing.T) {
		commercial, err := NewSchedule(ClassCommercial, []Band{
			{UpTo: nil, Rate: decimal.RequireFromString("8.0")},
		}, decimal.NewFromInt(100), decimal.RequireFromString("1.05"))
		require.NoError(t, err)

		_, err = NewTable(commercial)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate class", func(t *testing.T) {
		a, err := NewSchedule(ClassResidential, []Band{
			{UpTo: nil, Rate: decimal.RequireFromString("4.5")},
		}, decimal.NewFromInt(50), decimal.RequireFromString("1.05"))
		require.NoError(t, err)

		_, err = NewTable(a, a)
		assert.Error(t, err)
	})
}

func TestTable_ScheduleFor(t *testing.T) {
	table := DefaultTable()

	t.Run("returns explicit schedule", func(t *testing.T) {
		s := table.ScheduleFor(ClassCommercial)
		assert.Equal(t, ClassCommercial, s.Class)
	})

	t.Run("unknown class falls back to residential", func(t *testing.T) {
		s := table.ScheduleFor(ConnectionClass("industrial"))
		assert.Equal(t, ClassResidential, s.Class)
	})

	t.Run("empty class falls back to residential", func(t *testing.T) {
		s := table.ScheduleFor(ConnectionClass(""))
		assert.Equal(t, ClassResidential, s.Class)
	})
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	assert.ElementsMatch(t, []ConnectionClass{ClassResidential, ClassCommercial}, table.Classes())

	res := table.ScheduleFor(ClassResidential)
	assert.Equal(t, "50", res.FixedCharge.String())
	assert.Equal(t, "1.05", res.TaxRate.String())
	require.Len(t, res.Bands, 2)
	assert.Equal(t, int64(100), *res.Bands[0].UpTo)
	assert.True(t, res.Bands[1].IsUnbounded())

	com := table.ScheduleFor(ClassCommercial)
	assert.Equal(t, "100", com.FixedCharge.String())
	require.Len(t, com.Bands, 3)
	assert.Equal(t, int64(300), *com.Bands[1].UpTo)
}
