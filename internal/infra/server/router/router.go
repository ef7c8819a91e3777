// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-copilot/backend/internal/integration/entrypoint/controller"
	"github.com/finance-copilot/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	dashboardController *controller.DashboardController
	challengeController *controller.ChallengeController
	adviceController    *controller.AdviceController
	adviceRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	challengeController *controller.ChallengeController,
	adviceController *controller.AdviceController,
	adviceRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		dashboardController: dashboardController,
		challengeController: challengeController,
		adviceController:    adviceController,
		adviceRateLimiter:   adviceRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Paths are flat by contract:
// the dashboard client calls them without a version prefix.
func (r *Router) setupAPIRoutes() {
	if r.dashboardController != nil {
		r.engine.GET("/dashboard", r.dashboardController.Get)
	}

	if r.challengeController != nil {
		r.engine.PUT("/challenges", r.challengeController.Complete)
		r.engine.POST("/challenges", r.challengeController.Create)
	}

	if r.adviceController != nil {
		handlers := []gin.HandlerFunc{}
		if r.adviceRateLimiter != nil {
			handlers = append(handlers, r.adviceRateLimiter.Middleware())
		}
		handlers = append(handlers, r.adviceController.Chat)
		r.engine.POST("/ai-chat", handlers...)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
