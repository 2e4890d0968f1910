package portfoliov1

import (
	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
)

// Viewer is the read-only view of a portfolio handed to strategies and
// to the matcher's cash check.
type Viewer interface {
	Cash() float64
	Position(symbol string) (Position, bool)
	Positions() map[string]Position
	EquityHistory() []EquityPoint
	TradeHistory() []*orderv1.FillReceipt
}

// Portfolio owns cash and per-symbol position state, applies fills and
// records the equity time series.
type Portfolio interface {
	Viewer

	ApplyFill(fill *orderv1.FillReceipt)
	TotalValue(currentPrices map[string]float64) (float64, error)
	RecordEquity(timestamp int64, currentPrices map[string]float64) error
}
