package cache

import (
	"context"
	"sync"

	"github.com/utilibill/backend/internal/domain/tariff"
)

// InMemoryScheduleCache is a process-local schedule cache. State is not
// shared across instances; suitable for single-instance deployments and
// tests.
type InMemoryScheduleCache struct {
	mu        sync.RWMutex
	schedules map[tariff.ConnectionClass]*tariff.Schedule
}

// NewInMemoryScheduleCache creates an empty in-memory schedule cache
func NewInMemoryScheduleCache() *InMemoryScheduleCache {
	return &InMemoryScheduleCache{
		schedules: make(map[tariff.ConnectionClass]*tariff.Schedule),
	}
}

// Get implements ScheduleCache
func (c *InMemoryScheduleCache) Get(_ context.Context, class tariff.ConnectionClass) (*tariff.Schedule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	schedule, ok := c.schedules[class]
	return schedule, ok
}

// Set implements ScheduleCache
func (c *InMemoryScheduleCache) Set(_ context.Context, schedule *tariff.Schedule) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedules[schedule.Class] = schedule
	return nil
}

// Invalidate implements ScheduleCache
func (c *InMemoryScheduleCache) Invalidate(_ context.Context, class tariff.ConnectionClass) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.schedules, class)
	return nil
}
