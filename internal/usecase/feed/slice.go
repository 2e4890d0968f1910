package feed

import (
	"context"
	"io"

	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
)

// SliceFeed serves a fixed in-memory sequence of events. It is the
// simplest Feed and the one tests and synthetic runs use.
type SliceFeed struct {
	events []feedv1.Event
	next   int
}

// NewSliceFeed creates a feed over the given events in order.
func NewSliceFeed(events ...feedv1.Event) *SliceFeed {
	return &SliceFeed{events: events}
}

// Next returns the next event, or io.EOF once the sequence is exhausted.
func (f *SliceFeed) Next(ctx context.Context) (feedv1.Event, error) {
	if f.next >= len(f.events) {
		return nil, io.EOF
	}

	event := f.events[f.next]
	f.next++
	return event, nil
}

// Close is a no-op for an in-memory feed.
func (f *SliceFeed) Close() error {
	return nil
}
