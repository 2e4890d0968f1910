package engine

import (
	"context"
	"io"

	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	marketv1 "github.com/cadenlund/BacktestingFramework/internal/domain/market/v1"
	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
	portfoliov1 "github.com/cadenlund/BacktestingFramework/internal/domain/portfolio/v1"
	strategyv1 "github.com/cadenlund/BacktestingFramework/internal/domain/strategy/v1"
	"github.com/cadenlund/BacktestingFramework/pkg/errors"
	"github.com/cadenlund/BacktestingFramework/pkg/logger"
)

// State represents the engine lifecycle. Transitions are linear with no
// re-entry: NOT_STARTED to RUNNING on the first event, RUNNING to ENDED
// once the feed is exhausted.
type State string

const (
	// StateNotStarted is the state before the first event is read.
	StateNotStarted State = "not_started"
	// StateRunning is the state while events are being processed.
	StateRunning State = "running"
	// StateEnded is the terminal state after the feed is exhausted.
	StateEnded State = "ended"
)

// Engine drives one simulation run: it feeds price events to the market,
// invokes the strategy's callbacks, and applies drained fills to the
// portfolio in a fixed order every tick. One (Engine, Market, Portfolio)
// triple belongs to one run; state is never shared across runs.
type Engine struct {
	market    marketv1.Market
	portfolio portfoliov1.Portfolio
	strategy  strategyv1.Strategy
	feed      feedv1.Feed
	logger    *logger.Logger

	state            State
	eventCount       int64
	throttleInterval int
}

// NewEngine creates a new engine with default options.
func NewEngine(
	market marketv1.Market,
	portfolio portfoliov1.Portfolio,
	strategy strategyv1.Strategy,
	feed feedv1.Feed,
	log *logger.Logger,
) *Engine {
	return NewEngineWithOptions(market, portfolio, strategy, feed, log, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options.
func NewEngineWithOptions(
	market marketv1.Market,
	portfolio portfoliov1.Portfolio,
	strategy strategyv1.Strategy,
	feed feedv1.Feed,
	log *logger.Logger,
	options *Options,
) *Engine {
	throttle := options.ThrottleInterval
	if throttle <= 0 {
		throttle = 1
	}

	return &Engine{
		market:           market,
		portfolio:        portfolio,
		strategy:         strategy,
		feed:             feed,
		logger:           log,
		state:            StateNotStarted,
		throttleInterval: throttle,
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// EventCount returns the number of events processed so far.
func (e *Engine) EventCount() int64 {
	return e.eventCount
}

// SubmitOrder routes an order from the strategy to the market. The engine
// is the strategy's only order destination.
func (e *Engine) SubmitOrder(order *orderv1.Order) error {
	if order == nil {
		return errors.NewErrorDetails("cannot submit a nil order", string(errors.OrderNil), "submit")
	}

	e.market.Submit(order)
	return nil
}

// Portfolio exposes the read-only portfolio view to the strategy.
func (e *Engine) Portfolio() portfoliov1.Viewer {
	return e.portfolio
}

// Run consumes the feed to exhaustion. The first event transitions the
// engine to RUNNING and is processed by the same per-tick algorithm as
// every other event; the strategy's OnStart hook runs after the market
// has observed that first event's prices, so immediately submitted market
// orders can be priced. An empty feed short-circuits to OnStart and OnEnd
// back to back with no data events in between.
//
// Strategy and feed faults are not retried or swallowed: the first error
// aborts the run.
func (e *Engine) Run(ctx context.Context) error {
	if e.state != StateNotStarted {
		return errors.NewErrorDetails("engine has already run", string(errors.EngineAlreadyRun), "run")
	}

	e.strategy.Attach(e)

	firstEvent, err := e.feed.Next(ctx)
	if err == io.EOF {
		// empty feed: start and end the strategy's life with no data
		e.state = StateRunning
		e.strategy.OnStart()
		e.strategy.OnEnd()
		e.state = StateEnded
		e.logger.InfoContext(ctx, "Run ended: empty event source")
		return nil
	}
	if err != nil {
		return errors.TracerFromError(err)
	}

	e.state = StateRunning
	e.market.Update(firstEvent)
	e.eventCount = 1

	e.logger.DebugContext(ctx, "First event observed",
		logger.Field{Key: "prices", Value: firstEvent.Prices()},
	)

	e.strategy.OnStart()
	if err := e.processEvent(ctx, firstEvent); err != nil {
		return err
	}

	for {
		event, err := e.feed.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.TracerFromError(err)
		}

		e.eventCount++
		e.market.Update(event)
		if err := e.processEvent(ctx, event); err != nil {
			return err
		}
	}

	e.strategy.OnEnd()
	e.state = StateEnded

	e.logger.InfoContext(ctx, "Run ended",
		logger.Field{Key: "events", Value: e.eventCount},
		logger.Field{Key: "trades", Value: len(e.portfolio.TradeHistory())},
		logger.Field{Key: "cash", Value: e.portfolio.Cash()},
	)

	return nil
}

// processEvent applies the per-tick algorithm: record pre-fill equity,
// then, on throttle boundaries, invoke the data callback and hand each
// drained fill to the strategy before folding it into the portfolio.
func (e *Engine) processEvent(ctx context.Context, event feedv1.Event) error {
	timestamp, ok := event.Timestamp()
	if !ok {
		return errors.NewErrorDetails(
			"event carries no extractable timestamp",
			string(errors.FeedMissingTimestamp),
			feedv1.TimestampKey,
		)
	}

	if err := e.portfolio.RecordEquity(timestamp, event.Prices()); err != nil {
		return err
	}

	if e.eventCount%int64(e.throttleInterval) != 0 {
		return nil
	}

	e.strategy.OnData(event)

	for _, fill := range e.market.Drain() {
		e.strategy.OnOrderExecution(fill)
		e.portfolio.ApplyFill(fill)
	}

	return nil
}
