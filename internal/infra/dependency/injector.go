// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-copilot/backend/config"
	"github.com/finance-copilot/backend/internal/application/adapter"
	"github.com/finance-copilot/backend/internal/application/usecase/advice"
	"github.com/finance-copilot/backend/internal/application/usecase/challenge"
	"github.com/finance-copilot/backend/internal/application/usecase/dashboard"
	"github.com/finance-copilot/backend/internal/infra/server/router"
	"github.com/finance-copilot/backend/internal/integration/adapters"
	"github.com/finance-copilot/backend/internal/integration/entrypoint/controller"
	"github.com/finance-copilot/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-copilot/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The advice service and Redis client are process-wide resources constructed
// once in main and handed in here.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, adviceService adapter.AdviceService) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	challengeRepo := persistence.NewChallengeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)

	// Create adapters/services
	pointsLedger := adapters.NewRedisPointsLedger(redisClient)

	// Create dashboard use cases
	getSnapshotUseCase := dashboard.NewGetSnapshotUseCase(
		userRepo,
		accountRepo,
		goalRepo,
		budgetRepo,
		challengeRepo,
		expenseRepo,
		pointsLedger,
	)
	provisionUserUseCase := dashboard.NewProvisionUserUseCase(userRepo, pointsLedger)

	// Create challenge use cases
	completeChallengeUseCase := challenge.NewCompleteChallengeUseCase(challengeRepo, pointsLedger)
	createChallengeUseCase := challenge.NewCreateChallengeUseCase(challengeRepo)

	// Create advice use case
	requestAdviceUseCase := advice.NewRequestAdviceUseCase(adviceService, cfg.Gemini.RequestTimeout)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
		adviceService.IsAvailable,
	)
	dashboardController := controller.NewDashboardController(getSnapshotUseCase, provisionUserUseCase)
	challengeController := controller.NewChallengeController(completeChallengeUseCase, createChallengeUseCase)
	adviceController := controller.NewAdviceController(requestAdviceUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var adviceRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		adviceRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		adviceRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(healthController, dashboardController, challengeController, adviceController, adviceRateLimiter)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
