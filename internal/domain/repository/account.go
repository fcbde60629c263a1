package repository

import (
	"context"

	"github.com/mrcash/rewards/internal/domain/model"
)

// AccountRepository manages user accounts and the authoritative points balance.
//
// DebitBalance must be atomic with respect to concurrent debits and credits on
// the same account: it re-reads the authoritative balance, fails with
// ErrInsufficientBalance when it is lower than amount, and otherwise writes
// balance-amount back, returning the new balance. CreditBalance adds points
// to an existing account.
type AccountRepository interface {
	Create(ctx context.Context, email, passwordHash, displayName, photoURL string) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	DebitBalance(ctx context.Context, userID int64, amount int64) (int64, error)
	CreditBalance(ctx context.Context, userID int64, amount int64) error
}
