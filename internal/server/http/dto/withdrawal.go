package dto

import "time"

// WithdrawRequest describes a withdrawal submission payload.
type WithdrawRequest struct {
	Method         string `json:"method"`
	AccountDetails string `json:"account_details"`
	Amount         int64  `json:"amount"`
}

// WithdrawalResponse describes one withdrawal history entry.
type WithdrawalResponse struct {
	ID             int64     `json:"id"`
	Method         string    `json:"method"`
	AccountDetails string    `json:"account_details"`
	Amount         int64     `json:"amount"`
	CashValue      float64   `json:"cash_value"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// PaymentMethodResponse describes one payout destination from the catalog.
type PaymentMethodResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max"`
}
