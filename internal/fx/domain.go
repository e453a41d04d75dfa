package fx

import (
	"go.uber.org/fx"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/config"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/auth"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/calculator"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/dashboard"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/ledger"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/market"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/news"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/planner"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/shared"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/user"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/infrastructure"
	marketdataclient "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/integrations/marketdata"
	newsclient "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/integrations/news"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/logger"
)

// DomainModule provides all domain services and outbound clients.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserServiceAdapter,
		newUserCheckerService,

		newGoogleClientID,
		newAuthService,

		newPlannerService,
		newCalculatorService,

		newMarketDataClient,
		newMarketService,

		newNewsClient,
		newNewsService,

		newLedgerService,
		newDashboardService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserServiceAdapter(userSvc *user.Service) *user.UserServiceAdapter {
	return user.NewUserServiceAdapter(userSvc)
}

func newUserCheckerService(adapter *user.UserServiceAdapter) *shared.UserCheckerService {
	return shared.NewUserCheckerService(adapter)
}

func newGoogleClientID(cfg *config.Config) string {
	if !cfg.GoogleAuth.Enabled {
		logger.Info().Msg("Google sign-in disabled")
		return ""
	}
	if cfg.GoogleAuth.ClientID == "" {
		logger.Warn().Msg("GOOGLE_OAUTH_ENABLED=true but GOOGLE_OAUTH_CLIENT_ID is empty")
		return ""
	}
	return cfg.GoogleAuth.ClientID
}

func newAuthService(
	repo *infrastructure.UserRepository,
	userSvc *user.Service,
	googleClientID string,
) *auth.Service {
	return auth.NewService(repo, userSvc, googleClientID)
}

func newPlannerService(
	store *infrastructure.PlannerSessionStore,
	userChecker *shared.UserCheckerService,
) *planner.Service {
	return planner.NewService(store, userChecker)
}

func newCalculatorService(
	history *infrastructure.CalculatorHistoryStore,
	userChecker *shared.UserCheckerService,
) *calculator.Service {
	return calculator.NewService(history, userChecker)
}

func newMarketDataClient(cfg *config.Config) *marketdataclient.Client {
	return marketdataclient.NewClient(cfg)
}

func newMarketService(
	provider *marketdataclient.Client,
	watchlist *infrastructure.WatchlistRepository,
	userChecker *shared.UserCheckerService,
) *market.Service {
	return market.NewService(provider, watchlist, userChecker)
}

func newNewsClient(cfg *config.Config) *newsclient.Client {
	return newsclient.NewClient(cfg)
}

func newNewsService(provider *newsclient.Client) *news.Service {
	return news.NewService(provider)
}

func newLedgerService(
	repo *infrastructure.LedgerRepository,
	userChecker *shared.UserCheckerService,
) *ledger.Service {
	return ledger.NewService(repo, userChecker)
}

func newDashboardService(
	marketSvc *market.Service,
	newsSvc *news.Service,
	ledgerSvc *ledger.Service,
) *dashboard.Service {
	return dashboard.NewService(marketSvc, newsSvc, ledgerSvc)
}
