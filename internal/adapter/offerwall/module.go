package offerwall

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mrcash/rewards/internal/config"
)

// Module exposes the offer-wall service to the fx graph.
var Module = fx.Provide(newService)

type serviceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newService(p serviceParams) *Service {
	return NewService(p.Config.PostbackSecret, p.Logger)
}
