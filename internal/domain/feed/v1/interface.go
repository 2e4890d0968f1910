package feedv1

import "context"

// Feed is a one-shot forward sequence of events. Next returns io.EOF once
// the source is exhausted; a feed is not restartable once iteration begins.
type Feed interface {
	Next(ctx context.Context) (Event, error)
	Close() error
}
