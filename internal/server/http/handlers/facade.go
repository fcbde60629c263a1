package handlers

import (
	"context"

	"github.com/mrcash/rewards/internal/adapter/offerwall"
	"github.com/mrcash/rewards/internal/domain/model"
	"github.com/mrcash/rewards/internal/watcher"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, displayName, photoURL string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// BalanceFacade provides balance and withdrawal operations.
type BalanceFacade interface {
	Balance(ctx context.Context, userID int64) (int64, error)
	WatchBalance(ctx context.Context, userID int64) <-chan watcher.Update
	Withdraw(ctx context.Context, userID int64, methodID, accountDetails string, amount int64) (*model.WithdrawalRequest, error)
	Withdrawals(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error)
}

// OfferWallFacade resolves partner walls and credits verified earnings.
type OfferWallFacade interface {
	OfferWalls(userID int64) []offerwall.UserWall
	CreditFromWall(ctx context.Context, wallID string, userID int64, amount int64, txID, signature string) error
}

// RewardsFacade aggregates the full set of operations used across handlers.
type RewardsFacade interface {
	AuthFacade
	BalanceFacade
	OfferWallFacade
}
