package cache

import (
	"context"

	"github.com/utilibill/backend/internal/domain/tariff"
)

// ScheduleCache caches tariff schedules by connection class. Implementations
// must treat a miss as a normal outcome, never an error.
type ScheduleCache interface {
	// Get returns the cached schedule for the class, or (nil, false) on a miss
	Get(ctx context.Context, class tariff.ConnectionClass) (*tariff.Schedule, bool)

	// Set stores the schedule for the class
	Set(ctx context.Context, schedule *tariff.Schedule) error

	// Invalidate drops the cached schedule for the class
	Invalidate(ctx context.Context, class tariff.ConnectionClass) error
}

// CachedScheduleProvider is a read-through cache in front of a schedule
// source. A cache failure falls back to the source; the calculator never
// sees cache errors.
type CachedScheduleProvider struct {
	source tariff.ScheduleProvider
	cache  ScheduleCache
}

// NewCachedScheduleProvider wraps a schedule source with a cache
func NewCachedScheduleProvider(source tariff.ScheduleProvider, cache ScheduleCache) *CachedScheduleProvider {
	return &CachedScheduleProvider{source: source, cache: cache}
}

// ScheduleFor implements tariff.ScheduleProvider
func (p *CachedScheduleProvider) ScheduleFor(class tariff.ConnectionClass) *tariff.Schedule {
	ctx := context.Background()
	if schedule, ok := p.cache.Get(ctx, class); ok {
		return schedule
	}

	schedule := p.source.ScheduleFor(class)
	if schedule != nil {
		_ = p.cache.Set(ctx, schedule)
	}
	return schedule
}
