package market

import (
	"time"

	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	marketv1 "github.com/cadenlund/BacktestingFramework/internal/domain/market/v1"
	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
	"github.com/cadenlund/BacktestingFramework/pkg/logger"
)

// Market is the simulated exchange: it tracks the last observed price per
// symbol and resolves submitted orders immediately, full-or-nothing,
// against those prices. Receipts accumulate until drained.
//
// A Market is owned by exactly one engine run and is not safe for
// concurrent use.
type Market struct {
	lastPrices map[string]float64
	pending    []*orderv1.FillReceipt
	cash       marketv1.CashView
	logger     *logger.Logger
	now        func() int64 // receipt clock, overridable in tests
}

// NewMarket creates a market that checks buy orders against the given
// ledger cash view.
func NewMarket(cash marketv1.CashView, log *logger.Logger) *Market {
	return &Market{
		lastPrices: make(map[string]float64),
		cash:       cash,
		logger:     log,
		now:        func() int64 { return time.Now().UnixNano() },
	}
}

// Update records the latest prices observed in the event. It never
// produces fills.
func (m *Market) Update(event feedv1.Event) {
	for symbol, price := range event.Prices() {
		m.lastPrices[symbol] = price
	}
}

// LastPrice returns the last observed price for a symbol.
func (m *Market) LastPrice(symbol string) (float64, bool) {
	price, ok := m.lastPrices[symbol]
	return price, ok
}

// Submit evaluates the order immediately against the latest known price
// and appends exactly one receipt to the pending list, terminal rejections
// included.
func (m *Market) Submit(order *orderv1.Order) {
	fillPrice, priced := m.lastPrices[order.Symbol]
	if !priced && order.LimitPrice > 0 {
		// no observed price yet, fall back to the order's limit price
		fillPrice = order.LimitPrice
		priced = true
	}

	if !priced {
		m.logger.Warn("Order rejected: no price available",
			logger.Field{Key: "orderID", Value: order.ID},
			logger.Field{Key: "symbol", Value: order.Symbol},
		)
		m.append(order, 0, 0, orderv1.FillStatusRejectedNoPrice)
		return
	}

	if order.IsBuy() {
		requiredCash := order.Quantity * fillPrice
		if m.cash.Cash() < requiredCash {
			m.logger.Warn("Order rejected: insufficient cash",
				logger.Field{Key: "orderID", Value: order.ID},
				logger.Field{Key: "symbol", Value: order.Symbol},
				logger.Field{Key: "requiredCash", Value: requiredCash},
				logger.Field{Key: "availableCash", Value: m.cash.Cash()},
			)
			m.append(order, 0, 0, orderv1.FillStatusRejectedInsufficientCash)
			return
		}
	}
	// sell orders carry no cash check, short selling is permitted

	m.logger.Debug("Order executed",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "symbol", Value: order.Symbol},
		logger.Field{Key: "side", Value: order.Side},
		logger.Field{Key: "quantity", Value: order.Quantity},
		logger.Field{Key: "price", Value: fillPrice},
	)
	m.append(order, order.Quantity, fillPrice, orderv1.FillStatusFilled)
}

// Drain returns all pending receipts in submission order and empties the
// pending list.
func (m *Market) Drain() []*orderv1.FillReceipt {
	fills := m.pending
	m.pending = nil
	return fills
}

func (m *Market) append(order *orderv1.Order, quantity, price float64, status orderv1.FillStatus) {
	m.pending = append(m.pending, &orderv1.FillReceipt{
		OrderID:        order.ID,
		Symbol:         order.Symbol,
		Side:           order.Side,
		FilledQuantity: quantity,
		FillPrice:      price,
		Status:         status,
		Timestamp:      m.now(),
	})
}
