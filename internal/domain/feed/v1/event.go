package feedv1

import (
	"encoding/json"
	"time"
)

// TimestampKey is the reserved event field carrying the event time.
// It is excluded from price extraction.
const TimestampKey = "timestamp"

// PriceKey is the field carrying the price inside a nested symbol structure.
const PriceKey = "price"

// Event is a single observation from an event source: one reserved
// timestamp field plus zero or more symbol fields, each either a bare
// numeric price or a nested structure exposing a "price" field.
type Event map[string]any

// Timestamp returns the event time in unix milliseconds.
// The second return value reports whether a timestamp could be extracted.
func (e Event) Timestamp() (int64, bool) {
	raw, ok := e[TimestampKey]
	if !ok {
		return 0, false
	}

	switch v := raw.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	case time.Time:
		return v.UnixMilli(), true
	}
	return 0, false
}

// Prices extracts a symbol to price mapping from the event. Fields that are
// neither numeric nor a nested structure with a numeric price are skipped.
func (e Event) Prices() map[string]float64 {
	prices := make(map[string]float64, len(e))
	for key, value := range e {
		if key == TimestampKey {
			continue
		}

		if nested, ok := value.(map[string]any); ok {
			if price, ok := asPrice(nested[PriceKey]); ok {
				prices[key] = price
			}
			continue
		}

		if price, ok := asPrice(value); ok {
			prices[key] = price
		}
	}
	return prices
}

func asPrice(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
