package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/auth"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/calculator"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/dashboard"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/ledger"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/market"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/news"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/planner"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/user"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/middleware"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/routes"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	plannerSvc *planner.Service,
	calculatorSvc *calculator.Service,
	marketSvc *market.Service,
	newsSvc *news.Service,
	ledgerSvc *ledger.Service,
	dashboardSvc *dashboard.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:       userSvc,
		AuthService:       authSvc,
		JwtService:        jwtSvc,
		PlannerService:    plannerSvc,
		CalculatorService: calculatorSvc,
		MarketService:     marketSvc,
		NewsService:       newsSvc,
		LedgerService:     ledgerSvc,
		DashboardService:  dashboardSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
