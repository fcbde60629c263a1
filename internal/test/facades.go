package test

import (
	"context"
	"time"

	"github.com/mrcash/rewards/internal/adapter/offerwall"
	"github.com/mrcash/rewards/internal/domain/model"
	"github.com/mrcash/rewards/internal/watcher"
)

// BalanceFacadeStub simulates balance operations for HTTP layer tests.
type BalanceFacadeStub struct {
	BalanceFn     func(context.Context, int64) (int64, error)
	WatchFn       func(context.Context, int64) <-chan watcher.Update
	WithdrawFn    func(context.Context, int64, string, string, int64) (*model.WithdrawalRequest, error)
	WithdrawalsFn func(context.Context, int64) ([]model.WithdrawalRequest, error)
}

// Balance returns configured balance or a default value.
func (s BalanceFacadeStub) Balance(ctx context.Context, userID int64) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return 6000, nil
}

// WatchBalance returns the configured update stream or a closed channel.
func (s BalanceFacadeStub) WatchBalance(ctx context.Context, userID int64) <-chan watcher.Update {
	if s.WatchFn != nil {
		return s.WatchFn(ctx, userID)
	}
	ch := make(chan watcher.Update)
	close(ch)
	return ch
}

// Withdraw executes configured withdrawal handler.
func (s BalanceFacadeStub) Withdraw(ctx context.Context, userID int64, methodID, accountDetails string, amount int64) (*model.WithdrawalRequest, error) {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, userID, methodID, accountDetails, amount)
	}
	return &model.WithdrawalRequest{
		ID:             1,
		UserID:         userID,
		PaymentMethod:  methodID,
		AccountDetails: accountDetails,
		Amount:         amount,
		Status:         model.WithdrawalStatusPending,
		CreatedAt:      time.Unix(0, 0),
	}, nil
}

// Withdrawals returns preconfigured history.
func (s BalanceFacadeStub) Withdrawals(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error) {
	if s.WithdrawalsFn != nil {
		return s.WithdrawalsFn(ctx, userID)
	}
	return []model.WithdrawalRequest{{ID: 1, UserID: userID, PaymentMethod: "PayPal", Amount: 5000, Status: model.WithdrawalStatusPending, CreatedAt: time.Unix(0, 0)}}, nil
}

// OfferWallFacadeStub simulates offer-wall catalog and crediting.
type OfferWallFacadeStub struct {
	WallsFn  func(int64) []offerwall.UserWall
	CreditFn func(context.Context, string, int64, int64, string, string) error

	Credits []CreditCall
}

// CreditCall records one crediting invocation.
type CreditCall struct {
	Wall   string
	UserID int64
	Amount int64
	TxID   string
}

// OfferWalls returns the configured catalog or one default wall.
func (s *OfferWallFacadeStub) OfferWalls(userID int64) []offerwall.UserWall {
	if s.WallsFn != nil {
		return s.WallsFn(userID)
	}
	return []offerwall.UserWall{{ID: "adlexy", Name: "Adlexy", URL: "https://adlexy.example/42"}}
}

// CreditFromWall records the call or delegates to the override.
func (s *OfferWallFacadeStub) CreditFromWall(ctx context.Context, wallID string, userID int64, amount int64, txID, signature string) error {
	if s.CreditFn != nil {
		return s.CreditFn(ctx, wallID, userID, amount, txID, signature)
	}
	s.Credits = append(s.Credits, CreditCall{Wall: wallID, UserID: userID, Amount: amount, TxID: txID})
	return nil
}

// RewardsFacadeStub aggregates facade dependencies for HTTP layer tests.
type RewardsFacadeStub struct {
	AuthFacadeStub
	BalanceFacadeStub
	OfferWallFacadeStub
}
