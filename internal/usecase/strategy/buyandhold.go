package strategy

import (
	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
	strategyv1 "github.com/cadenlund/BacktestingFramework/internal/domain/strategy/v1"
	"github.com/cadenlund/BacktestingFramework/pkg/logger"
)

// BuyAndHold invests a fraction of starting cash into one symbol on the
// first priced event and holds it for the rest of the run.
type BuyAndHold struct {
	strategyv1.Base

	logger       *logger.Logger
	symbol       string
	cashFraction float64
	invested     bool
}

// NewBuyAndHold creates the strategy for one symbol. cashFraction is
// clamped to (0, 1].
func NewBuyAndHold(symbol string, cashFraction float64, log *logger.Logger) *BuyAndHold {
	if cashFraction <= 0 || cashFraction > 1 {
		cashFraction = 1
	}

	return &BuyAndHold{
		logger:       log,
		symbol:       symbol,
		cashFraction: cashFraction,
	}
}

// OnData sizes and submits the single entry order on the first event that
// prices the symbol, then does nothing for the rest of the run.
func (s *BuyAndHold) OnData(event feedv1.Event) {
	if s.invested {
		return
	}

	price, ok := event.Prices()[s.symbol]
	if !ok || price <= 0 {
		return
	}

	quantity := s.Portfolio().Cash() * s.cashFraction / price
	order, err := orderv1.NewMarketOrder(s.symbol, orderv1.SideBuy, quantity)
	if err != nil {
		s.logger.Error(err, logger.Field{Key: "symbol", Value: s.symbol})
		return
	}

	if err := s.Submit(order); err != nil {
		s.logger.Error(err, logger.Field{Key: "orderID", Value: order.ID})
		return
	}

	s.invested = true
	s.logger.Info("Entry order submitted, holding until the end",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "symbol", Value: s.symbol},
		logger.Field{Key: "quantity", Value: quantity},
	)
}

// OnOrderExecution logs the entry receipt.
func (s *BuyAndHold) OnOrderExecution(fill *orderv1.FillReceipt) {
	s.logger.Info("Order executed",
		logger.Field{Key: "orderID", Value: fill.OrderID},
		logger.Field{Key: "status", Value: fill.Status},
		logger.Field{Key: "price", Value: fill.FillPrice},
	)
}
