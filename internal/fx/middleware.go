package fx

import (
	"go.uber.org/fx"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/config"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/user"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
