package cache

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/utilibill/backend/internal/infrastructure/config"
)

// ScheduleCacheFactory creates schedule caches based on configuration
type ScheduleCacheFactory struct {
	redisConfig           config.RedisConfig
	ttl                   time.Duration
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// ScheduleCacheFactoryOption is a functional option for configuring the factory
type ScheduleCacheFactoryOption func(*ScheduleCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) ScheduleCacheFactoryOption {
	return func(f *ScheduleCacheFactory) {
		f.logger = logger
	}
}

// WithTTL sets the expiry for cached schedules
func WithTTL(ttl time.Duration) ScheduleCacheFactoryOption {
	return func(f *ScheduleCacheFactory) {
		f.ttl = ttl
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) ScheduleCacheFactoryOption {
	return func(f *ScheduleCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewScheduleCacheFactory creates a new factory
func NewScheduleCacheFactory(cfg config.RedisConfig, opts ...ScheduleCacheFactoryOption) *ScheduleCacheFactory {
	f := &ScheduleCacheFactory{
		redisConfig:           cfg,
		ttl:                   time.Hour,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateCache tries Redis first and falls back to an in-memory cache when
// Redis is unavailable and fallback is allowed
func (f *ScheduleCacheFactory) CreateCache() (ScheduleCache, error) {
	cache, err := NewRedisScheduleCache(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}, f.ttl)
	if err == nil {
		f.logger.Info("using Redis tariff schedule cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for schedule cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory schedule cache. "+
		"Schedule changes will not propagate across instances.",
		zap.Error(err),
	)
	return NewInMemoryScheduleCache(), nil
}
