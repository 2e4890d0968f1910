package orderv1

import (
	"time"

	"github.com/cadenlund/BacktestingFramework/pkg/errors"
	"github.com/oklog/ulid/v2"
)

// Side represents the direction of an order.
type Side string

const (
	// SideBuy represents a buy order.
	SideBuy Side = "buy"
	// SideSell represents a sell order.
	SideSell Side = "sell"
)

// IsValid checks whether the side is one of the two known directions.
func (s Side) IsValid() bool {
	return s == SideBuy || s == SideSell
}

// Kind represents the type of order.
type Kind string

const (
	// KindMarket represents a market order.
	KindMarket Kind = "market"
	// KindLimit represents a limit order.
	KindLimit Kind = "limit"
)

// Order represents a single immutable trade request.
type Order struct {
	ID         string  `json:"id"`
	Symbol     string  `json:"symbol"`
	Side       Side    `json:"side"`
	Quantity   float64 `json:"quantity"`
	Kind       Kind    `json:"kind"`
	LimitPrice float64 `json:"limitPrice,omitempty"` // set only for limit orders
	CreatedAt  int64   `json:"createdAt"`            // unix nanoseconds
}

// NewMarketOrder creates a market order with a generated ID.
func NewMarketOrder(symbol string, side Side, quantity float64) (*Order, error) {
	return newOrder(symbol, side, quantity, KindMarket, 0)
}

// NewLimitOrder creates a limit order with a generated ID.
func NewLimitOrder(symbol string, side Side, quantity, limitPrice float64) (*Order, error) {
	return newOrder(symbol, side, quantity, KindLimit, limitPrice)
}

func newOrder(symbol string, side Side, quantity float64, kind Kind, limitPrice float64) (*Order, error) {
	if quantity <= 0 {
		return nil, errors.NewErrorDetails("order quantity must be positive", string(errors.OrderInvalidQuantity), "quantity")
	}
	if kind == KindLimit && limitPrice <= 0 {
		return nil, errors.NewErrorDetails("limit order requires a positive limit price", string(errors.OrderMissingLimitPrice), "limitPrice")
	}

	return &Order{
		ID:         ulid.Make().String(), // Generate a unique ID for the order
		Symbol:     symbol,
		Side:       side,
		Quantity:   quantity,
		Kind:       kind,
		LimitPrice: limitPrice,
		CreatedAt:  time.Now().UnixNano(),
	}, nil
}

// IsBuy checks if the order is a buy order.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsSell checks if the order is a sell order.
func (o *Order) IsSell() bool {
	return o.Side == SideSell
}
