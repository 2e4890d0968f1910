package engine

// Options represents configuration options for the Engine.
type Options struct {
	// ThrottleInterval is the number of events between successive
	// invocations of the strategy's data callback. Equity is still
	// recorded on every event.
	ThrottleInterval int
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		ThrottleInterval: 1,
	}
}
