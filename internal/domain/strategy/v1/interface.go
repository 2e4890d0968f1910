package strategyv1

import (
	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
	portfoliov1 "github.com/cadenlund/BacktestingFramework/internal/domain/portfolio/v1"
)

// Trader is the capability the engine hands a strategy: submitting orders
// and reading the portfolio.
type Trader interface {
	SubmitOrder(order *orderv1.Order) error
	Portfolio() portfoliov1.Viewer
}

// Strategy is the callback contract the engine drives. OnData is the only
// mandatory callback; embed Base for no-op defaults of the others and for
// the trader attachment plumbing.
type Strategy interface {
	Attach(trader Trader)
	OnStart()
	OnData(event feedv1.Event)
	OnOrderExecution(fill *orderv1.FillReceipt)
	OnEnd()
}
