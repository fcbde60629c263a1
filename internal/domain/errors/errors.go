package errors

import "errors"

var (
	ErrAlreadyExists          = errors.New("already exists")
	ErrNotFound               = errors.New("not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrUnknownPaymentMethod   = errors.New("unknown payment method")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrAmountBelowMinimum     = errors.New("amount below method minimum")
	ErrAmountAboveMaximum     = errors.New("amount above method maximum")
	ErrAccountDetailsTooShort = errors.New("account details too short")
)
