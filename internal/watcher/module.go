package watcher

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mrcash/rewards/internal/config"
	"github.com/mrcash/rewards/internal/domain/repository"
)

// Module provides the balance watcher to the fx graph.
var Module = fx.Provide(newWatcher)

type watcherParams struct {
	fx.In

	Accounts repository.AccountRepository
	Config   *config.Config
	Logger   *slog.Logger
}

func newWatcher(p watcherParams) *Watcher {
	return New(p.Accounts, p.Config.BalancePollInterval, p.Logger)
}
