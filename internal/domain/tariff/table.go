package tariff

import (
	"github.com/shopspring/decimal"
	"github.com/utilibill/backend/internal/domain/shared"
)

// ScheduleProvider resolves a connection class to its tariff schedule.
// Implementations must be safe for unbounded concurrent use.
type ScheduleProvider interface {
	ScheduleFor(class ConnectionClass) *Schedule
}

// Table is an immutable mapping from connection class to tariff schedule.
// Lookups for unrecognized classes fall back to the residential schedule;
// this is a deliberate default policy rather than an error, so that meters
// with a misconfigured class still bill at the most conservative rates.
type Table struct {
	schedules map[ConnectionClass]*Schedule
	fallback  *Schedule
}

// NewTable creates a tariff table from the given schedules.
// A residential schedule is required because it doubles as the fallback.
func NewTable(schedules ...*Schedule) (*Table, error) {
	byClass := make(map[ConnectionClass]*Schedule, len(schedules))
	for _, s := range schedules {
		if s == nil {
			return nil, shared.NewDomainError("INVALID_TABLE", "Schedule cannot be nil")
		}
		if _, exists := byClass[s.Class]; exists {
			return nil, shared.NewDomainError("INVALID_TABLE", "Duplicate schedule for class "+s.Class.String())
		}
		byClass[s.Class] = s
	}

	fallback, ok := byClass[ClassResidential]
	if !ok {
		return nil, shared.NewDomainError("INVALID_TABLE", "Table requires a residential schedule as fallback")
	}

	return &Table{schedules: byClass, fallback: fallback}, nil
}

// ScheduleFor returns the schedule for the given connection class,
// falling back to residential for unknown classes.
func (t *Table) ScheduleFor(class ConnectionClass) *Schedule {
	if s, ok := t.schedules[class]; ok {
		return s
	}
	return t.fallback
}

// Classes returns the connection classes the table has explicit schedules for
func (t *Table) Classes() []ConnectionClass {
	classes := make([]ConnectionClass, 0, len(t.schedules))
	for class := range t.schedules {
		classes = append(classes, class)
	}
	return classes
}

// DefaultTable returns the built-in tariff table used when no rate
// configuration is supplied.
func DefaultTable() *Table {
	residential, err := NewSchedule(
		ClassResidential,
		[]Band{
			{UpTo: UpToUnits(100), Rate: decimal.RequireFromString("3.5")},
			{UpTo: nil, Rate: decimal.RequireFromString("4.5")},
		},
		decimal.NewFromInt(50),
		decimal.RequireFromString("1.05"),
	)
	if err != nil {
		panic(err)
	}

	commercial, err := NewSchedule(
		ClassCommercial,
		[]Band{
			{UpTo: UpToUnits(100), Rate: decimal.RequireFromString("5.0")},
			{UpTo: UpToUnits(300), Rate: decimal.RequireFromString("6.5")},
			{UpTo: nil, Rate: decimal.RequireFromString("8.0")},
		},
		decimal.NewFromInt(100),
		decimal.RequireFromString("1.05"),
	)
	if err != nil {
		panic(err)
	}

	table, err := NewTable(residential, commercial)
	if err != nil {
		panic(err)
	}
	return table
}

// Ensure Table implements ScheduleProvider
var _ ScheduleProvider = (*Table)(nil)
