package strategyv1

import (
	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
	portfoliov1 "github.com/cadenlund/BacktestingFramework/internal/domain/portfolio/v1"
	"github.com/cadenlund/BacktestingFramework/pkg/errors"
)

// Base provides trader attachment and no-op lifecycle defaults for
// concrete strategies. It deliberately does not implement OnData.
type Base struct {
	trader Trader
}

// Attach hands the strategy its order submission capability. The engine
// calls this once at the start of a run.
func (b *Base) Attach(trader Trader) {
	b.trader = trader
}

// Submit routes an order through the attached engine. Submitting while
// detached fails immediately; the order is never silently dropped.
func (b *Base) Submit(order *orderv1.Order) error {
	if b.trader == nil {
		return errors.NewErrorDetails("strategy is not attached to a running engine", string(errors.StrategyNotAttached), "submit")
	}
	return b.trader.SubmitOrder(order)
}

// Portfolio returns the read-only portfolio view, or nil while detached.
func (b *Base) Portfolio() portfoliov1.Viewer {
	if b.trader == nil {
		return nil
	}
	return b.trader.Portfolio()
}

// OnStart is a no-op default.
func (b *Base) OnStart() {}

// OnOrderExecution is a no-op default.
func (b *Base) OnOrderExecution(fill *orderv1.FillReceipt) {}

// OnEnd is a no-op default.
func (b *Base) OnEnd() {}
