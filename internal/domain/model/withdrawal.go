package model

import "time"

// WithdrawalStatus describes the lifecycle of a withdrawal request. The
// application only ever creates pending requests; later transitions happen in
// an external operational process.
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusPaid     WithdrawalStatus = "paid"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

// WithdrawalRequest is the auditable record of a user's intent to convert
// points into an external payout. Created only after a successful balance
// debit; immutable afterwards from the application's perspective.
type WithdrawalRequest struct {
	ID             int64
	UserID         int64
	DisplayName    string
	PaymentMethod  string
	AccountDetails string
	Amount         int64
	Status         WithdrawalStatus
	CreatedAt      time.Time
}
