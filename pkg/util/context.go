package util

import (
	"context"

	"github.com/google/uuid"
)

type key string

const (
	runIDKey      = key("run-id")
	strategyIDKey = key("strategy-id")
)

// WithRunID returns a context carrying the given simulation run id.
// It will generate a new run id if the provided id is empty.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return context.WithValue(ctx, runIDKey, NewRunID())
	}

	return context.WithValue(ctx, runIDKey, id)
}

// GetRunID returns the run id from ctx if available.
func GetRunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithStrategyID returns a context carrying the strategy identifier.
func WithStrategyID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, strategyIDKey, id)
}

// GetStrategyID returns the strategy identifier from ctx if available.
func GetStrategyID(ctx context.Context) string {
	id, _ := ctx.Value(strategyIDKey).(string)
	return id
}

// NewRunID returns a uuid-v4 string to use as a run id.
func NewRunID() string {
	return uuid.NewString()
}
