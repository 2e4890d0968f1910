package portfoliov1

// Position represents a directional holding in one symbol. Quantity is
// signed: positive for long, negative for short. AveragePrice is the cost
// basis of the current directional exposure; a flat position is removed
// from the ledger, never kept at zero quantity.
type Position struct {
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
}

// IsLong checks if the position is long.
func (p Position) IsLong() bool {
	return p.Quantity > 0
}

// IsShort checks if the position is short.
func (p Position) IsShort() bool {
	return p.Quantity < 0
}

// EquityPoint is one entry in the equity time series.
type EquityPoint struct {
	Timestamp  int64   `json:"timestamp"` // unix milliseconds
	TotalValue float64 `json:"totalValue"`
}
