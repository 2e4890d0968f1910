package feedv1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test 1: Timestamp extraction coerces the common numeric encodings
func TestEvent_Timestamp(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_000)

	cases := []struct {
		name     string
		raw      any
		expected int64
	}{
		{"int64", int64(1_700_000_000_000), 1_700_000_000_000},
		{"int", int(42), 42},
		{"float64", float64(1_700_000_000_000), 1_700_000_000_000},
		{"json.Number", json.Number("1700000000000"), 1_700_000_000_000},
		{"time.Time", at, 1_700_000_000_000},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			event := Event{TimestampKey: c.raw, "AAPL": 100.0}
			ts, ok := event.Timestamp()
			require.True(t, ok)
			assert.Equal(t, c.expected, ts)
		})
	}
}

// Test 2: A missing or non-temporal timestamp field is reported, not guessed
func TestEvent_Timestamp_Missing(t *testing.T) {
	_, ok := Event{"AAPL": 100.0}.Timestamp()
	assert.False(t, ok)

	_, ok = Event{TimestampKey: "yesterday"}.Timestamp()
	assert.False(t, ok)
}

// Test 3: Scalar symbol fields become prices, the timestamp field never does
func TestEvent_Prices_Scalar(t *testing.T) {
	event := Event{
		TimestampKey: int64(1),
		"AAPL":       100.5,
		"MSFT":       int(200),
		"TSLA":       int64(300),
	}

	prices := event.Prices()
	assert.Equal(t, map[string]float64{"AAPL": 100.5, "MSFT": 200, "TSLA": 300}, prices)
}

// Test 4: Nested symbol structures expose their price field
func TestEvent_Prices_Nested(t *testing.T) {
	event := Event{
		TimestampKey: int64(1),
		"AAPL": map[string]any{
			PriceKey: 101.25,
			"volume": 1_000_000,
		},
	}

	prices := event.Prices()
	assert.Equal(t, map[string]float64{"AAPL": 101.25}, prices)
}

// Test 5: Non-numeric fields and priceless nested structures are skipped
func TestEvent_Prices_SkipsUnusableFields(t *testing.T) {
	event := Event{
		TimestampKey: int64(1),
		"AAPL":       100.0,
		"note":       "earnings day",
		"MSFT":       map[string]any{"volume": 5},
	}

	prices := event.Prices()
	assert.Equal(t, map[string]float64{"AAPL": 100.0}, prices)
}
