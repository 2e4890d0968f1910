package orderv1

import (
	"testing"

	"github.com/cadenlund/BacktestingFramework/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test 1: A valid market order gets a unique ID and carries no limit price
func TestNewMarketOrder(t *testing.T) {
	order, err := NewMarketOrder("AAPL", SideBuy, 10)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "AAPL", order.Symbol)
	assert.Equal(t, SideBuy, order.Side)
	assert.Equal(t, 10.0, order.Quantity)
	assert.Equal(t, KindMarket, order.Kind)
	assert.Equal(t, 0.0, order.LimitPrice)
	assert.True(t, order.IsBuy())
	assert.False(t, order.IsSell())

	other, err := NewMarketOrder("AAPL", SideBuy, 10)
	require.NoError(t, err)
	assert.NotEqual(t, order.ID, other.ID)
}

// Test 2: A valid limit order stores its limit price
func TestNewLimitOrder(t *testing.T) {
	order, err := NewLimitOrder("MSFT", SideSell, 5, 199.5)
	require.NoError(t, err)

	assert.Equal(t, KindLimit, order.Kind)
	assert.Equal(t, 199.5, order.LimitPrice)
	assert.True(t, order.IsSell())
}

// Test 3: Non-positive quantities are refused at construction
func TestNewOrder_InvalidQuantity(t *testing.T) {
	for _, quantity := range []float64{0, -1} {
		_, err := NewMarketOrder("AAPL", SideBuy, quantity)
		require.Error(t, err)
		assert.True(t, errors.ErrorCodeEquals(err, errors.OrderInvalidQuantity))
	}
}

// Test 4: A limit order without a positive limit price is refused
func TestNewLimitOrder_MissingLimitPrice(t *testing.T) {
	_, err := NewLimitOrder("AAPL", SideBuy, 10, 0)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, errors.OrderMissingLimitPrice))
}

// Test 5: Side validity covers exactly the two known directions
func TestSide_IsValid(t *testing.T) {
	assert.True(t, SideBuy.IsValid())
	assert.True(t, SideSell.IsValid())
	assert.False(t, Side("hold").IsValid())
	assert.False(t, Side("").IsValid())
}

// Test 6: A receipt counts as executed only when filled with a real price
func TestFillReceipt_Filled(t *testing.T) {
	executed := &FillReceipt{Status: FillStatusFilled, FillPrice: 100, FilledQuantity: 10}
	assert.True(t, executed.Filled())
	assert.Equal(t, 1_000.0, executed.Notional())

	rejected := &FillReceipt{Status: FillStatusRejectedInsufficientCash}
	assert.False(t, rejected.Filled())

	unpriced := &FillReceipt{Status: FillStatusFilled}
	assert.False(t, unpriced.Filled())
}

// Test 7: Fill status validity
func TestFillStatus_IsValid(t *testing.T) {
	assert.True(t, FillStatusFilled.IsValid())
	assert.True(t, FillStatusRejectedNoPrice.IsValid())
	assert.True(t, FillStatusRejectedInsufficientCash.IsValid())
	assert.False(t, FillStatus("partial").IsValid())
}
