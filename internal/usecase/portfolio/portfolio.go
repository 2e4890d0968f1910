package portfolio

import (
	"fmt"

	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
	portfoliov1 "github.com/cadenlund/BacktestingFramework/internal/domain/portfolio/v1"
	"github.com/cadenlund/BacktestingFramework/pkg/errors"
	"github.com/cadenlund/BacktestingFramework/pkg/logger"
)

// Portfolio is the position ledger: it owns cash, per-symbol directional
// positions and the append-only trade and equity histories.
//
// A Portfolio is owned by exactly one engine run and is not safe for
// concurrent use.
type Portfolio struct {
	cash          float64
	positions     map[string]portfoliov1.Position
	tradeHistory  []*orderv1.FillReceipt
	equityHistory []portfoliov1.EquityPoint
	logger        *logger.Logger
}

// NewPortfolio creates a flat portfolio holding the given starting cash.
func NewPortfolio(startingCash float64, log *logger.Logger) *Portfolio {
	return &Portfolio{
		cash:      startingCash,
		positions: make(map[string]portfoliov1.Position),
		logger:    log,
	}
}

// Cash returns the current cash balance.
func (p *Portfolio) Cash() float64 {
	return p.cash
}

// Position returns the current position for a symbol. A missing entry
// means flat.
func (p *Portfolio) Position(symbol string) (portfoliov1.Position, bool) {
	pos, ok := p.positions[symbol]
	return pos, ok
}

// Positions returns a copy of the current position map.
func (p *Portfolio) Positions() map[string]portfoliov1.Position {
	positions := make(map[string]portfoliov1.Position, len(p.positions))
	for symbol, pos := range p.positions {
		positions[symbol] = pos
	}
	return positions
}

// TradeHistory returns the applied fills in application order.
func (p *Portfolio) TradeHistory() []*orderv1.FillReceipt {
	return p.tradeHistory
}

// EquityHistory returns the recorded equity time series in append order.
func (p *Portfolio) EquityHistory() []portfoliov1.EquityPoint {
	return p.equityHistory
}

// ApplyFill folds one fill receipt into the ledger. Receipts that are not
// genuine fills never mutate state: they are skipped with a diagnostic.
// A fill whose side is outside the known directions indicates a corrupted
// matcher and panics.
func (p *Portfolio) ApplyFill(fill *orderv1.FillReceipt) {
	if !fill.Filled() {
		p.logger.Debug("Skipping fill, not an executed order",
			logger.Field{Key: "orderID", Value: fill.OrderID},
			logger.Field{Key: "status", Value: fill.Status},
		)
		return
	}

	switch fill.Side {
	case orderv1.SideBuy:
		p.applyBuy(fill.Symbol, fill.FilledQuantity, fill.FillPrice)
	case orderv1.SideSell:
		p.applySell(fill.Symbol, fill.FilledQuantity, fill.FillPrice)
	default:
		panic(fmt.Sprintf("portfolio: invalid order side %q on fill %s", fill.Side, fill.OrderID))
	}

	p.tradeHistory = append(p.tradeHistory, fill)

	p.logger.Debug("Fill applied",
		logger.Field{Key: "orderID", Value: fill.OrderID},
		logger.Field{Key: "symbol", Value: fill.Symbol},
		logger.Field{Key: "side", Value: fill.Side},
		logger.Field{Key: "cash", Value: p.cash},
	)
}

// applyBuy debits cash and extends a long or covers a short. Extending a
// long blends the average price quantity-weighted; covering reduces the
// short magnitude without touching its average, and a buy larger than the
// short closes it and opens a fresh long at the fill price.
func (p *Portfolio) applyBuy(symbol string, quantity, price float64) {
	p.cash -= quantity * price

	pos, ok := p.positions[symbol]
	if !ok || pos.Quantity >= 0 {
		p.positions[symbol] = portfoliov1.Position{
			Symbol:       symbol,
			Quantity:     pos.Quantity + quantity,
			AveragePrice: weightedAvg(pos.AveragePrice, pos.Quantity, price, quantity),
		}
		return
	}

	// covering a short, symmetric to the sell-side reduction below
	shortQty := -pos.Quantity
	switch {
	case quantity < shortQty:
		pos.Quantity += quantity
		p.positions[symbol] = pos
	case quantity == shortQty:
		delete(p.positions, symbol)
	default:
		// short fully covered, excess flips to a fresh long at the
		// covering fill's price; the short's average is discarded
		p.positions[symbol] = portfoliov1.Position{
			Symbol:       symbol,
			Quantity:     quantity - shortQty,
			AveragePrice: price,
		}
	}
}

// applySell credits cash and reduces a long or opens/extends a short.
// Extending a short blends the average price over magnitudes; reducing a
// long leaves its average untouched, deletes the entry at exactly zero,
// and a sell larger than the long flips the excess into a fresh short at
// the fill price.
func (p *Portfolio) applySell(symbol string, quantity, price float64) {
	p.cash += quantity * price

	pos, ok := p.positions[symbol]
	if !ok {
		p.positions[symbol] = portfoliov1.Position{
			Symbol:       symbol,
			Quantity:     -quantity,
			AveragePrice: price,
		}
		return
	}

	if pos.Quantity > 0 {
		switch {
		case pos.Quantity > quantity:
			pos.Quantity -= quantity
			p.positions[symbol] = pos
		case pos.Quantity == quantity:
			delete(p.positions, symbol)
		default:
			// long fully closed, excess opens a fresh short at the fill
			// price; the closed long's average is discarded
			p.positions[symbol] = portfoliov1.Position{
				Symbol:       symbol,
				Quantity:     -(quantity - pos.Quantity),
				AveragePrice: price,
			}
		}
		return
	}

	// extending a short: blend over magnitudes
	shortQty := -pos.Quantity
	p.positions[symbol] = portfoliov1.Position{
		Symbol:       symbol,
		Quantity:     -(shortQty + quantity),
		AveragePrice: weightedAvg(pos.AveragePrice, shortQty, price, quantity),
	}
}

// TotalValue marks the portfolio to market: cash plus each held position's
// quantity times its current price. Every held symbol must be priced
// individually.
func (p *Portfolio) TotalValue(currentPrices map[string]float64) (float64, error) {
	total := p.cash
	for symbol, pos := range p.positions {
		price, ok := currentPrices[symbol]
		if !ok {
			return 0, errors.NewErrorDetails(
				fmt.Sprintf("no current price for held symbol %s", symbol),
				string(errors.PortfolioUnpricedSymbol),
				symbol,
			)
		}
		total += pos.Quantity * price
	}
	return total, nil
}

// RecordEquity appends the current marked-to-market value to the equity
// history. The engine calls this before applying the tick's fills, so the
// series reflects pre-fill state at every tick boundary.
func (p *Portfolio) RecordEquity(timestamp int64, currentPrices map[string]float64) error {
	totalValue, err := p.TotalValue(currentPrices)
	if err != nil {
		return err
	}

	p.equityHistory = append(p.equityHistory, portfoliov1.EquityPoint{
		Timestamp:  timestamp,
		TotalValue: totalValue,
	})
	return nil
}

func weightedAvg(price1, quantity1, price2, quantity2 float64) float64 {
	if quantity1+quantity2 == 0 {
		return 0
	}
	return (price1*quantity1 + price2*quantity2) / (quantity1 + quantity2)
}
