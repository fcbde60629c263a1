package dto

// BalanceResponse represents the current points balance and its cash value.
type BalanceResponse struct {
	Balance   int64   `json:"balance"`
	CashValue float64 `json:"cash_value"`
}

// BalanceEvent is one server-sent snapshot of the balance stream.
type BalanceEvent struct {
	Balance   int64   `json:"balance"`
	CashValue float64 `json:"cash_value"`
	Delta     int64   `json:"delta,omitempty"`
}
