package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "utilibill-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "utilibill", cfg.Database.DBName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 15, cfg.Billing.DueDays)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("idle conns over open conns", func(t *testing.T) {
		cfg := valid()
		cfg.Database.MaxIdleConns = 100
		assert.Error(t, cfg.validate())
	})

	t.Run("non-positive due days", func(t *testing.T) {
		cfg := valid()
		cfg.Billing.DueDays = -1
		assert.Error(t, cfg.validate())
	})

	t.Run("production requires password and ssl", func(t *testing.T) {
		cfg := valid()
		cfg.App.Env = "production"
		assert.Error(t, cfg.validate())

		cfg.Database.Password = "secret"
		assert.Error(t, cfg.validate())

		cfg.Database.SSLMode = "require"
		assert.NoError(t, cfg.validate())
	})

	t.Run("tariff override rules", func(t *testing.T) {
		cfg := valid()
		cfg.Tariff.Residential = TariffScheduleConfig{
			FixedCharge: 50,
			TaxRate:     1.05,
			Bands: []TariffBandConfig{
				{UpTo: 100, Rate: 3.5},
				{UpTo: 0, Rate: 4.5},
			},
		}
		require.NoError(t, cfg.validate())

		cfg.Tariff.Residential.Bands[1].UpTo = 200
		assert.Error(t, cfg.validate(), "last band must be unbounded")

		cfg.Tariff.Residential.Bands = []TariffBandConfig{
			{UpTo: 0, Rate: 3.5},
			{UpTo: 0, Rate: 4.5},
		}
		assert.Error(t, cfg.validate(), "only the last band may be unbounded")

		cfg.Tariff.Residential.Bands = []TariffBandConfig{
			{UpTo: 100, Rate: -1},
			{UpTo: 0, Rate: 4.5},
		}
		assert.Error(t, cfg.validate(), "negative rate")
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "billing",
		Password: "p@ss/word",
		DBName:   "utilibill",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word", "password must be escaped")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}

func TestTariffConfigIsZero(t *testing.T) {
	var cfg TariffConfig
	assert.True(t, cfg.IsZero())

	cfg.Commercial.Bands = []TariffBandConfig{{UpTo: 0, Rate: 8}}
	assert.False(t, cfg.IsZero())
}
