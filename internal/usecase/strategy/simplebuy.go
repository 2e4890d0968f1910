package strategy

import (
	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
	strategyv1 "github.com/cadenlund/BacktestingFramework/internal/domain/strategy/v1"
	"github.com/cadenlund/BacktestingFramework/pkg/logger"
)

// SimpleBuy submits one market buy for a fixed quantity the moment the
// run starts. The start hook runs after the market has observed the first
// event, so the order is priced at the first event's price.
type SimpleBuy struct {
	strategyv1.Base

	logger   *logger.Logger
	symbol   string
	quantity float64
}

// NewSimpleBuy creates the strategy.
func NewSimpleBuy(symbol string, quantity float64, log *logger.Logger) *SimpleBuy {
	return &SimpleBuy{
		logger:   log,
		symbol:   symbol,
		quantity: quantity,
	}
}

// OnStart submits the single entry order.
func (s *SimpleBuy) OnStart() {
	order, err := orderv1.NewMarketOrder(s.symbol, orderv1.SideBuy, s.quantity)
	if err != nil {
		s.logger.Error(err, logger.Field{Key: "symbol", Value: s.symbol})
		return
	}

	if err := s.Submit(order); err != nil {
		s.logger.Error(err, logger.Field{Key: "orderID", Value: order.ID})
		return
	}

	s.logger.Info("Entry order submitted",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "symbol", Value: s.symbol},
		logger.Field{Key: "quantity", Value: s.quantity},
	)
}

// OnData does nothing; the strategy only acts at start.
func (s *SimpleBuy) OnData(event feedv1.Event) {}

// OnOrderExecution logs the receipt.
func (s *SimpleBuy) OnOrderExecution(fill *orderv1.FillReceipt) {
	s.logger.Info("Order executed",
		logger.Field{Key: "orderID", Value: fill.OrderID},
		logger.Field{Key: "status", Value: fill.Status},
		logger.Field{Key: "price", Value: fill.FillPrice},
	)
}
