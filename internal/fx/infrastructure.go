package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/config"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newWatchlistRepository,
		newLedgerRepository,
		newPlannerSessionStore,
		newCalculatorHistoryStore,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return infrastructure.NewUserRepository(db)
}

func newWatchlistRepository(db *gorm.DB) *infrastructure.WatchlistRepository {
	return infrastructure.NewWatchlistRepository(db)
}

func newLedgerRepository(db *gorm.DB) *infrastructure.LedgerRepository {
	return infrastructure.NewLedgerRepository(db)
}

func newPlannerSessionStore() *infrastructure.PlannerSessionStore {
	return infrastructure.NewPlannerSessionStore()
}

func newCalculatorHistoryStore() *infrastructure.CalculatorHistoryStore {
	return infrastructure.NewCalculatorHistoryStore()
}
