package di

import (
	"github.com/mrcash/rewards/internal/adapter/offerwall"
	"github.com/mrcash/rewards/internal/app"
	"github.com/mrcash/rewards/internal/config"
	"github.com/mrcash/rewards/internal/logger"
	"github.com/mrcash/rewards/internal/pkg/auth"
	"github.com/mrcash/rewards/internal/server/http/handlers"
	"github.com/mrcash/rewards/internal/server/http/router"
	"github.com/mrcash/rewards/internal/storage/postgres"
	"github.com/mrcash/rewards/internal/usecase"
	"github.com/mrcash/rewards/internal/watcher"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		offerwall.Module,
		usecase.Module,
		watcher.Module,
		fx.Provide(func(f *app.RewardsFacade) handlers.RewardsFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
