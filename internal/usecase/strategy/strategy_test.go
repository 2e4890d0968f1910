package strategy

import (
	"context"
	"testing"

	"github.com/cadenlund/BacktestingFramework/internal/app/engine"
	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
	strategyv1 "github.com/cadenlund/BacktestingFramework/internal/domain/strategy/v1"
	"github.com/cadenlund/BacktestingFramework/internal/usecase/feed"
	"github.com/cadenlund/BacktestingFramework/internal/usecase/market"
	"github.com/cadenlund/BacktestingFramework/internal/usecase/portfolio"
	"github.com/cadenlund/BacktestingFramework/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to run a strategy over a synthetic price series
func runStrategy(t *testing.T, startingCash float64, symbol string, prices []float64, strat strategyv1.Strategy) *portfolio.Portfolio {
	t.Helper()

	log, err := logger.NewLogger()
	require.NoError(t, err)

	events := make([]feedv1.Event, len(prices))
	for i, price := range prices {
		events[i] = feedv1.Event{feedv1.TimestampKey: int64(i + 1), symbol: price}
	}

	ledger := portfolio.NewPortfolio(startingCash, log)
	simMarket := market.NewMarket(ledger, log)
	e := engine.NewEngine(simMarket, ledger, strat, feed.NewSliceFeed(events...), log)

	require.NoError(t, e.Run(context.Background()))
	return ledger
}

// Test 1: Buy and hold invests the configured cash fraction on the first
// priced event and never trades again
func TestBuyAndHold_SingleEntry(t *testing.T) {
	log, err := logger.NewLogger()
	require.NoError(t, err)

	strat := NewBuyAndHold("AAPL", 0.5, log)
	ledger := runStrategy(t, 1_000, "AAPL", []float64{100, 110, 120}, strat)

	trades := ledger.TradeHistory()
	require.Len(t, trades, 1)
	assert.Equal(t, orderv1.SideBuy, trades[0].Side)
	assert.Equal(t, 5.0, trades[0].FilledQuantity)
	assert.Equal(t, 100.0, trades[0].FillPrice)

	pos, ok := ledger.Position("AAPL")
	require.True(t, ok)
	assert.Equal(t, 5.0, pos.Quantity)
	assert.Equal(t, 500.0, ledger.Cash())
}

// Test 2: An out-of-range fraction clamps to investing everything
func TestBuyAndHold_ClampsFraction(t *testing.T) {
	log, err := logger.NewLogger()
	require.NoError(t, err)

	strat := NewBuyAndHold("AAPL", 2.5, log)
	ledger := runStrategy(t, 1_000, "AAPL", []float64{100}, strat)

	require.Len(t, ledger.TradeHistory(), 1)
	assert.Equal(t, 10.0, ledger.TradeHistory()[0].FilledQuantity)
	assert.Equal(t, 0.0, ledger.Cash())
}

// Test 3: Events that do not price the symbol are ignored until one does
func TestBuyAndHold_WaitsForItsSymbol(t *testing.T) {
	log, err := logger.NewLogger()
	require.NoError(t, err)

	strat := NewBuyAndHold("AAPL", 1, log)
	ledger := runStrategy(t, 1_000, "MSFT", []float64{100, 110}, strat)

	assert.Empty(t, ledger.TradeHistory())
	assert.Equal(t, 1_000.0, ledger.Cash())
}

// Test 4: A golden cross enters a long and the death cross closes it.
// With windows 2/3 the series 1,2,3,4,1,1 crosses up on the third event
// (short 2.5 over long 2) and down on the fifth (short 2.5 under long 8/3).
func TestMovingAverageCrossover_EnterAndExit(t *testing.T) {
	log, err := logger.NewLogger()
	require.NoError(t, err)

	strat := NewMovingAverageCrossover("AAPL", 2, 3, 1, log)
	ledger := runStrategy(t, 900, "AAPL", []float64{1, 2, 3, 4, 1, 1}, strat)

	trades := ledger.TradeHistory()
	require.Len(t, trades, 2)

	assert.Equal(t, orderv1.SideBuy, trades[0].Side)
	assert.Equal(t, 300.0, trades[0].FilledQuantity)
	assert.Equal(t, 3.0, trades[0].FillPrice)

	assert.Equal(t, orderv1.SideSell, trades[1].Side)
	assert.Equal(t, 300.0, trades[1].FilledQuantity)
	assert.Equal(t, 1.0, trades[1].FillPrice)

	assert.Empty(t, ledger.Positions())
	assert.Equal(t, 300.0, ledger.Cash())
}

// Test 5: No trade happens before the long window has filled
func TestMovingAverageCrossover_WaitsForWarmup(t *testing.T) {
	log, err := logger.NewLogger()
	require.NoError(t, err)

	strat := NewMovingAverageCrossover("AAPL", 2, 3, 1, log)
	ledger := runStrategy(t, 900, "AAPL", []float64{1, 2}, strat)

	assert.Empty(t, ledger.TradeHistory())
}

// Test 6: Invalid windows fall back to the 50/200 defaults
func TestNewMovingAverageCrossover_WindowFallback(t *testing.T) {
	log, err := logger.NewLogger()
	require.NoError(t, err)

	strat := NewMovingAverageCrossover("AAPL", 10, 5, 1, log)
	assert.Equal(t, 50, strat.shortWindow)
	assert.Equal(t, 200, strat.longWindow)
}

// Test 7: The scripted single buy executes at the first observed price
func TestSimpleBuy_BuysOnStart(t *testing.T) {
	log, err := logger.NewLogger()
	require.NoError(t, err)

	strat := NewSimpleBuy("AAPL", 10, log)
	ledger := runStrategy(t, 2_000, "AAPL", []float64{100, 105}, strat)

	trades := ledger.TradeHistory()
	require.Len(t, trades, 1)
	assert.Equal(t, 10.0, trades[0].FilledQuantity)
	assert.Equal(t, 100.0, trades[0].FillPrice)
	assert.Equal(t, 1_000.0, ledger.Cash())
}
