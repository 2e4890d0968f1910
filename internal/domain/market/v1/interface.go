package marketv1

import (
	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
)

// CashView provides the matcher read access to the ledger's current cash
// at matching time, so a buy's cash check sees post-previous-fill cash.
type CashView interface {
	Cash() float64
}

// Market owns the latest observed prices and turns submitted orders into
// fill receipts. Submit never returns a receipt directly; receipts are
// collected through Drain in submission order.
type Market interface {
	Update(event feedv1.Event)
	Submit(order *orderv1.Order)
	Drain() []*orderv1.FillReceipt
	LastPrice(symbol string) (float64, bool)
}
