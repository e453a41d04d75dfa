package fx

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/config"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/logger"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		loadEnvFiles,
		initLogger,
	),
)

func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env from current directory: %v", err)
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
