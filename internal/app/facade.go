package app

import (
	"context"

	"github.com/mrcash/rewards/internal/adapter/offerwall"
	domainErrors "github.com/mrcash/rewards/internal/domain/errors"
	"github.com/mrcash/rewards/internal/domain/model"
	"github.com/mrcash/rewards/internal/usecase"
	"github.com/mrcash/rewards/internal/watcher"
)

type RewardsFacade struct {
	accounts    *usecase.AccountUseCase
	withdrawals *usecase.WithdrawalUseCase
	balances    *watcher.Watcher
	walls       *offerwall.Service
}

func NewRewardsFacade(accounts *usecase.AccountUseCase, withdrawals *usecase.WithdrawalUseCase, balances *watcher.Watcher, walls *offerwall.Service) *RewardsFacade {
	return &RewardsFacade{accounts: accounts, withdrawals: withdrawals, balances: balances, walls: walls}
}

func (f *RewardsFacade) Register(ctx context.Context, email, password, displayName, photoURL string) (string, error) {
	_, token, err := f.accounts.Register(ctx, email, password, displayName, photoURL)
	return token, err
}

func (f *RewardsFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.accounts.Authenticate(ctx, email, password)
	return token, err
}

func (f *RewardsFacade) ParseToken(token string) (int64, error) {
	return f.accounts.ParseToken(token)
}

// Balance reads the current points balance. An account without a stored row
// reads as zero.
func (f *RewardsFacade) Balance(ctx context.Context, userID int64) (int64, error) {
	account, err := f.accounts.Profile(ctx, userID)
	if err != nil {
		if err == domainErrors.ErrNotFound {
			return 0, nil
		}
		return 0, err
	}
	return account.Balance, nil
}

func (f *RewardsFacade) WatchBalance(ctx context.Context, userID int64) <-chan watcher.Update {
	return f.balances.Watch(ctx, userID)
}

func (f *RewardsFacade) Withdraw(ctx context.Context, userID int64, methodID, accountDetails string, amount int64) (*model.WithdrawalRequest, error) {
	return f.withdrawals.Submit(ctx, userID, methodID, accountDetails, amount)
}

func (f *RewardsFacade) Withdrawals(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error) {
	return f.withdrawals.History(ctx, userID)
}

func (f *RewardsFacade) OfferWalls(userID int64) []offerwall.UserWall {
	return f.walls.Walls(userID)
}

// CreditFromWall verifies a partner postback and credits the earned points.
func (f *RewardsFacade) CreditFromWall(ctx context.Context, wallID string, userID int64, amount int64, txID, signature string) error {
	if err := f.walls.VerifyPostback(wallID, userID, amount, txID, signature); err != nil {
		return err
	}
	return f.accounts.Credit(ctx, userID, amount)
}
