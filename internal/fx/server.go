package fx

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/config"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/market"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/logger"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/middleware"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/routes"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
		newScheduler,
	),
	fx.Invoke(
		setupRoutes,
		startScheduler,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func newScheduler() *cron.Cron {
	return cron.New()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Login)
		public.POST("/auth/register", handler.Register)
		public.POST("/auth/google", handler.GoogleAuth)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		private.GET("/dashboard", handler.GetDashboard)

		users := private.Group("/users")
		{
			users.GET("/me", handler.GetMe)
			users.PATCH("/me", handler.UpdateMe)
			users.PATCH("/me/password", handler.UpdatePassword)
			users.DELETE("/me", handler.DeleteMe)
		}

		planner := private.Group("/planner")
		{
			planner.GET("/session", handler.GetPlannerSession)
			planner.PATCH("/session/field", handler.UpdatePlannerField)
			planner.PATCH("/session/select", handler.UpdatePlannerSelectField)
			planner.PATCH("/session/slider", handler.UpdatePlannerSliderField)
			planner.PATCH("/session/date", handler.UpdatePlannerDateField)
			planner.PUT("/session/file", handler.SelectPlannerFile)
			planner.DELETE("/session/file", handler.ClearPlannerFile)
			planner.POST("/session/submit", handler.SubmitPlanner)
			planner.POST("/session/reset", handler.ResetPlanner)
			planner.POST("/session/next", handler.AdvancePlannerStep)
			planner.POST("/session/back", handler.RetreatPlannerStep)
			planner.GET("/summary", handler.GetPlannerSummary)
		}

		calculators := private.Group("/calculators")
		{
			calculators.POST("/loan", handler.CalculateLoan)
			calculators.POST("/investment", handler.CalculateInvestment)
			calculators.POST("/retirement", handler.CalculateRetirement)
			calculators.POST("/budget", handler.CalculateBudget)
			calculators.POST("/networth", handler.CalculateNetWorth)
			calculators.POST("/goalplan", handler.CalculateGoalPlan)
			calculators.GET("/:kind/result", handler.GetCalculatorResult)
			calculators.GET("/:kind/history", handler.GetCalculatorHistory)
			calculators.POST("/:kind/history/:id/select", handler.SelectCalculatorResult)
		}

		marketGroup := private.Group("/market")
		{
			marketGroup.GET("/series/:symbol", handler.GetTimeSeries)
			marketGroup.GET("/watchlist", handler.GetWatchlist)
			marketGroup.POST("/watchlist", handler.AddToWatchlist)
			marketGroup.DELETE("/watchlist/:symbol", handler.RemoveFromWatchlist)
		}

		newsGroup := private.Group("/news")
		{
			newsGroup.GET("", handler.GetNewsDigest)
			newsGroup.GET("/:section", handler.GetNewsSection)
		}

		ledgerGroup := private.Group("/ledger")
		{
			ledgerGroup.POST("/entries", handler.CreateLedgerEntry)
			ledgerGroup.GET("/entries", handler.GetLedgerEntries)
			ledgerGroup.PATCH("/entries/:id", handler.UpdateLedgerEntry)
			ledgerGroup.DELETE("/entries/:id", handler.DeleteLedgerEntry)
			ledgerGroup.GET("/summary", handler.GetLedgerSummary)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("server failed to start")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("server stopping")
			return nil
		},
	})
}

// startScheduler keeps the watchlist quote cache warm in the background.
func startScheduler(
	lc fx.Lifecycle,
	cfg *config.Config,
	scheduler *cron.Cron,
	marketSvc *market.Service,
) error {
	spec := fmt.Sprintf("@every %s", cfg.MarketData.RefreshInterval)
	if _, err := scheduler.AddFunc(spec, func() {
		marketSvc.RefreshWatched(context.Background())
	}); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			scheduler.Start()
			logger.Info().Str("interval", cfg.MarketData.RefreshInterval.String()).Msg("market refresh scheduler started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := scheduler.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}
