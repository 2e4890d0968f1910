package strategy

import (
	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
	strategyv1 "github.com/cadenlund/BacktestingFramework/internal/domain/strategy/v1"
	"github.com/cadenlund/BacktestingFramework/pkg/logger"
)

// MovingAverageCrossover goes long one symbol while its short moving
// average is above its long moving average and exits when the relation
// inverts. Entries invest a fraction of current cash; exits close the
// whole position.
type MovingAverageCrossover struct {
	strategyv1.Base

	logger       *logger.Logger
	symbol       string
	shortWindow  int
	longWindow   int
	cashFraction float64

	prices []float64
	above  *bool // last observed short-over-long relation
}

// NewMovingAverageCrossover creates the strategy. shortWindow must be
// smaller than longWindow; invalid windows fall back to 50/200.
func NewMovingAverageCrossover(symbol string, shortWindow, longWindow int, cashFraction float64, log *logger.Logger) *MovingAverageCrossover {
	if shortWindow <= 0 || longWindow <= shortWindow {
		shortWindow, longWindow = 50, 200
	}
	if cashFraction <= 0 || cashFraction > 1 {
		cashFraction = 1
	}

	return &MovingAverageCrossover{
		logger:       log,
		symbol:       symbol,
		shortWindow:  shortWindow,
		longWindow:   longWindow,
		cashFraction: cashFraction,
	}
}

// OnData updates the rolling windows and trades on relation changes:
// short crossing above long buys, short crossing below long exits.
func (s *MovingAverageCrossover) OnData(event feedv1.Event) {
	price, ok := event.Prices()[s.symbol]
	if !ok || price <= 0 {
		return
	}

	s.prices = append(s.prices, price)
	if len(s.prices) < s.longWindow {
		return
	}

	shortMA := mean(s.prices[len(s.prices)-s.shortWindow:])
	longMA := mean(s.prices[len(s.prices)-s.longWindow:])
	if shortMA == longMA {
		// hold the previous relation
		return
	}

	above := shortMA > longMA
	crossed := s.above == nil || *s.above != above
	s.above = &above
	if !crossed {
		return
	}

	if above {
		s.enter(price)
	} else {
		s.exit()
	}
}

func (s *MovingAverageCrossover) enter(price float64) {
	if pos, held := s.Portfolio().Position(s.symbol); held && pos.IsLong() {
		return
	}

	quantity := s.Portfolio().Cash() * s.cashFraction / price
	if quantity <= 0 {
		return
	}

	order, err := orderv1.NewMarketOrder(s.symbol, orderv1.SideBuy, quantity)
	if err != nil {
		s.logger.Error(err, logger.Field{Key: "symbol", Value: s.symbol})
		return
	}

	if err := s.Submit(order); err != nil {
		s.logger.Error(err, logger.Field{Key: "orderID", Value: order.ID})
		return
	}

	s.logger.Info("Golden cross, entering long",
		logger.Field{Key: "symbol", Value: s.symbol},
		logger.Field{Key: "quantity", Value: quantity},
	)
}

func (s *MovingAverageCrossover) exit() {
	pos, held := s.Portfolio().Position(s.symbol)
	if !held || !pos.IsLong() {
		return
	}

	order, err := orderv1.NewMarketOrder(s.symbol, orderv1.SideSell, pos.Quantity)
	if err != nil {
		s.logger.Error(err, logger.Field{Key: "symbol", Value: s.symbol})
		return
	}

	if err := s.Submit(order); err != nil {
		s.logger.Error(err, logger.Field{Key: "orderID", Value: order.ID})
		return
	}

	s.logger.Info("Death cross, exiting long",
		logger.Field{Key: "symbol", Value: s.symbol},
		logger.Field{Key: "quantity", Value: pos.Quantity},
	)
}

// OnOrderExecution logs rejections so a mis-sized entry is visible.
func (s *MovingAverageCrossover) OnOrderExecution(fill *orderv1.FillReceipt) {
	if fill.Status != orderv1.FillStatusFilled {
		s.logger.Warn("Order rejected",
			logger.Field{Key: "orderID", Value: fill.OrderID},
			logger.Field{Key: "status", Value: fill.Status},
		)
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
