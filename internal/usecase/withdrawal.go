package usecase

import (
	"context"
	"log/slog"
	"strings"

	domainErrors "github.com/mrcash/rewards/internal/domain/errors"
	"github.com/mrcash/rewards/internal/domain/model"
	"github.com/mrcash/rewards/internal/domain/repository"
)

// WithdrawalUseCase converts withdrawal intents into durable requests while
// keeping the balance non-negative under concurrent submissions.
type WithdrawalUseCase struct {
	accounts    repository.AccountRepository
	withdrawals repository.WithdrawalRepository
	detailsMin  int
	logger      *slog.Logger
}

// NewWithdrawalUseCase constructs WithdrawalUseCase. detailsMin is the minimum
// accepted length for destination details after trimming.
func NewWithdrawalUseCase(accounts repository.AccountRepository, withdrawals repository.WithdrawalRepository, detailsMin int, logger *slog.Logger) *WithdrawalUseCase {
	if detailsMin <= 0 {
		detailsMin = 4
	}
	return &WithdrawalUseCase{accounts: accounts, withdrawals: withdrawals, detailsMin: detailsMin, logger: logger}
}

// Submit validates the request against the payment method catalog, debits the
// authoritative balance in one atomic store transaction, and then records the
// pending withdrawal request. Validation failures never touch the store.
//
// The debit and the request record are two sequential writes, not one atomic
// unit: if the second write fails the points are already spent. That outcome
// is logged so it does not pass silently.
func (u *WithdrawalUseCase) Submit(ctx context.Context, userID int64, methodID, accountDetails string, amount int64) (*model.WithdrawalRequest, error) {
	method, ok := model.PaymentMethodByID(methodID)
	if !ok {
		return nil, domainErrors.ErrUnknownPaymentMethod
	}
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if amount < method.Min {
		return nil, domainErrors.ErrAmountBelowMinimum
	}
	if amount > method.Max {
		return nil, domainErrors.ErrAmountAboveMaximum
	}
	accountDetails = strings.TrimSpace(accountDetails)
	if len(accountDetails) < u.detailsMin {
		return nil, domainErrors.ErrAccountDetailsTooShort
	}

	account, err := u.accounts.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := u.accounts.DebitBalance(ctx, userID, amount); err != nil {
		return nil, err
	}

	req, err := u.withdrawals.Create(ctx, model.WithdrawalRequest{
		UserID:         userID,
		DisplayName:    account.DisplayName,
		PaymentMethod:  method.Label,
		AccountDetails: accountDetails,
		Amount:         amount,
	})
	if err != nil {
		u.logger.Error("withdrawal request not recorded after committed debit",
			slog.Int64("user_id", userID),
			slog.Int64("amount", amount),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return req, nil
}

// History returns withdrawal requests sorted newest first.
func (u *WithdrawalUseCase) History(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error) {
	return u.withdrawals.ListByUser(ctx, userID)
}
