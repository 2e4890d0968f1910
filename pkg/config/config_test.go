package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test 1: Defaults produce a runnable CSV-backed configuration
func TestLoad_Defaults(t *testing.T) {
	var cfg Config
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "backtest", cfg.RunName)
	assert.Equal(t, 100_000.0, cfg.StartingCash)
	assert.Equal(t, 1, cfg.ThrottleInterval)
	assert.Equal(t, "buy_and_hold", cfg.Strategy.Name)
	assert.Equal(t, "csv", cfg.Feed.Source)
	assert.Equal(t, "testdata/prices.csv", cfg.Feed.CSVPath)
	assert.False(t, cfg.Result.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Result.Addrs)
}

// Test 2: Environment variables override defaults, prefixes included
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RUN_NAME", "ma-sweep")
	t.Setenv("STARTING_CASH", "2000")
	t.Setenv("THROTTLE_INTERVAL", "5")
	t.Setenv("STRATEGY_NAME", "ma_crossover")
	t.Setenv("STRATEGY_SHORT_WINDOW", "10")
	t.Setenv("STRATEGY_LONG_WINDOW", "30")
	t.Setenv("FEED_SOURCE", "kafka")
	t.Setenv("FEED_KAFKA_TOPIC", "prices")
	t.Setenv("FEED_KAFKA_BROKER", "broker-1:9092,broker-2:9092")
	t.Setenv("RESULT_ENABLED", "true")
	t.Setenv("RESULT_REDIS_ADDRESS", "redis:6379")

	var cfg Config
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "ma-sweep", cfg.RunName)
	assert.Equal(t, 2_000.0, cfg.StartingCash)
	assert.Equal(t, 5, cfg.ThrottleInterval)
	assert.Equal(t, "ma_crossover", cfg.Strategy.Name)
	assert.Equal(t, 10, cfg.Strategy.ShortWindow)
	assert.Equal(t, 30, cfg.Strategy.LongWindow)
	assert.Equal(t, "kafka", cfg.Feed.Source)
	assert.Equal(t, "prices", cfg.Feed.Topic)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Feed.Brokers)
	assert.True(t, cfg.Result.Enabled)
	assert.Equal(t, "redis:6379", cfg.Result.Addrs)
}
