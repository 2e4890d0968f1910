package orderv1

// FillStatus represents the terminal outcome of matching one order.
type FillStatus string

const (
	// FillStatusFilled represents a fully executed order.
	FillStatusFilled FillStatus = "filled"
	// FillStatusRejectedNoPrice represents an order rejected because no price could be resolved.
	FillStatusRejectedNoPrice FillStatus = "rejected_no_price"
	// FillStatusRejectedInsufficientCash represents a buy rejected because its notional exceeds available cash.
	FillStatusRejectedInsufficientCash FillStatus = "rejected_insufficient_cash"
)

// IsValid checks whether the status is one of the known terminal outcomes.
func (s FillStatus) IsValid() bool {
	switch s {
	case FillStatusFilled, FillStatusRejectedNoPrice, FillStatusRejectedInsufficientCash:
		return true
	}
	return false
}

// FillReceipt represents the immutable result of matching one order.
// A rejected receipt carries a zero filled quantity and no price.
type FillReceipt struct {
	OrderID        string     `json:"orderID"`
	Symbol         string     `json:"symbol"`
	Side           Side       `json:"side"`
	FilledQuantity float64    `json:"filledQuantity"`
	FillPrice      float64    `json:"fillPrice,omitempty"` // set only when filled
	Status         FillStatus `json:"status"`
	Timestamp      int64      `json:"timestamp"` // unix nanoseconds
}

// Filled checks if the receipt represents an executed order with a usable price.
func (f *FillReceipt) Filled() bool {
	return f.Status == FillStatusFilled && f.FillPrice > 0
}

// Notional returns the cash value of the fill.
func (f *FillReceipt) Notional() float64 {
	return f.FilledQuantity * f.FillPrice
}
