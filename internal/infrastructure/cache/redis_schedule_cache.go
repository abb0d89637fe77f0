package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/utilibill/backend/internal/domain/tariff"
)

const scheduleKeyPrefix = "tariff:schedule:"

// RedisScheduleCache caches tariff schedules in Redis so that schedule
// changes propagate to every instance without a restart
type RedisScheduleCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisScheduleCache connects to Redis and returns a schedule cache
func NewRedisScheduleCache(cfg RedisConfig, ttl time.Duration) (*RedisScheduleCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisScheduleCache{
		client:    client,
		keyPrefix: scheduleKeyPrefix,
		ttl:       ttl,
	}, nil
}

// NewRedisScheduleCacheWithClient creates a cache with an existing Redis client
func NewRedisScheduleCacheWithClient(client *redis.Client, ttl time.Duration) *RedisScheduleCache {
	return &RedisScheduleCache{
		client:    client,
		keyPrefix: scheduleKeyPrefix,
		ttl:       ttl,
	}
}

// scheduleEnvelope is the wire form of a schedule. Decimals travel as
// strings to survive JSON without precision loss.
type scheduleEnvelope struct {
	Class       string         `json:"class"`
	Bands       []bandEnvelope `json:"bands"`
	FixedCharge string         `json:"fixed_charge"`
	TaxRate     string         `json:"tax_rate"`
}

type bandEnvelope struct {
	UpTo *int64 `json:"up_to,omitempty"`
	Rate string `json:"rate"`
}

func packSchedule(s *tariff.Schedule) ([]byte, error) {
	env := scheduleEnvelope{
		Class:       string(s.Class),
		Bands:       make([]bandEnvelope, len(s.Bands)),
		FixedCharge: s.FixedCharge.String(),
		TaxRate:     s.TaxRate.String(),
	}
	for i, band := range s.Bands {
		env.Bands[i] = bandEnvelope{UpTo: band.UpTo, Rate: band.Rate.String()}
	}
	return json.Marshal(env)
}

func unpackSchedule(data []byte) (*tariff.Schedule, error) {
	var env scheduleEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	fixedCharge, err := decimal.NewFromString(env.FixedCharge)
	if err != nil {
		return nil, err
	}
	taxRate, err := decimal.NewFromString(env.TaxRate)
	if err != nil {
		return nil, err
	}

	bands := make([]tariff.Band, len(env.Bands))
	for i, band := range env.Bands {
		rate, err := decimal.NewFromString(band.Rate)
		if err != nil {
			return nil, err
		}
		bands[i] = tariff.Band{UpTo: band.UpTo, Rate: rate}
	}

	return tariff.NewSchedule(tariff.ConnectionClass(env.Class), bands, fixedCharge, taxRate)
}

// Get implements ScheduleCache
func (c *RedisScheduleCache) Get(ctx context.Context, class tariff.ConnectionClass) (*tariff.Schedule, bool) {
	data, err := c.client.Get(ctx, c.keyPrefix+string(class)).Bytes()
	if err != nil {
		return nil, false
	}

	schedule, err := unpackSchedule(data)
	if err != nil {
		// Stale or corrupt entry, drop it.
		_ = c.client.Del(ctx, c.keyPrefix+string(class)).Err()
		return nil, false
	}
	return schedule, true
}

// Set implements ScheduleCache
func (c *RedisScheduleCache) Set(ctx context.Context, schedule *tariff.Schedule) error {
	data, err := packSchedule(schedule)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.keyPrefix+string(schedule.Class), data, c.ttl).Err()
}

// Invalidate implements ScheduleCache
func (c *RedisScheduleCache) Invalidate(ctx context.Context, class tariff.ConnectionClass) error {
	return c.client.Del(ctx, c.keyPrefix+string(class)).Err()
}

// Close releases the Redis connection
func (c *RedisScheduleCache) Close() error {
	return c.client.Close()
}
