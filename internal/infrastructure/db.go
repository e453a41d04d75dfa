package infrastructure

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/config"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/ledger"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/market"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/user"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("failed to connect to database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("failed to obtain database handle")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("database connection established")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("running migrations")

	entities := []interface{}{
		&user.User{},
		&market.WatchlistItem{},
		&ledger.Entry{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("failed to migrate entity")
			return err
		}
	}

	logger.Info().Msg("migrations complete")
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *user.User:
		return "User"
	case *market.WatchlistItem:
		return "WatchlistItem"
	case *ledger.Entry:
		return "LedgerEntry"
	default:
		return "Unknown"
	}
}
