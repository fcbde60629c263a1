package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mrcash/rewards/internal/config"
	"github.com/mrcash/rewards/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAccountUseCase,
	newWithdrawalUseCase,
)

type withdrawalParams struct {
	fx.In

	Accounts    repository.AccountRepository
	Withdrawals repository.WithdrawalRepository
	Config      *config.Config
	Logger      *slog.Logger
}

func newWithdrawalUseCase(p withdrawalParams) *WithdrawalUseCase {
	return NewWithdrawalUseCase(p.Accounts, p.Withdrawals, p.Config.AccountDetailsMin, p.Logger)
}
