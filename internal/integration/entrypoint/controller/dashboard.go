// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-copilot/backend/internal/application/usecase/dashboard"
	"github.com/finance-copilot/backend/internal/domain/entity"
	domainerror "github.com/finance-copilot/backend/internal/domain/error"
	"github.com/finance-copilot/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSnapshotUseCase   *dashboard.GetSnapshotUseCase
	provisionUserUseCase *dashboard.ProvisionUserUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getSnapshotUseCase *dashboard.GetSnapshotUseCase,
	provisionUserUseCase *dashboard.ProvisionUserUseCase,
) *DashboardController {
	return &DashboardController{
		getSnapshotUseCase:   getSnapshotUseCase,
		provisionUserUseCase: provisionUserUseCase,
	}
}

// Get handles GET /dashboard requests. An unknown user id triggers one-time
// provisioning before the snapshot is read again; every later request is a
// plain read.
func (c *DashboardController) Get(ctx *gin.Context) {
	userID := ctx.DefaultQuery("userId", entity.DemoUserID)

	input := dashboard.GetSnapshotInput{UserID: userID}

	output, err := c.getSnapshotUseCase.Execute(ctx.Request.Context(), input)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		if err := c.provisionUserUseCase.Execute(ctx.Request.Context(), dashboard.ProvisionUserInput{UserID: userID}); err != nil {
			slog.Error("Failed to provision user", "user_id", userID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to fetch dashboard data",
				Code:  string(domainerror.ErrCodeProvisioningFailed),
			})
			return
		}
		output, err = c.getSnapshotUseCase.Execute(ctx.Request.Context(), input)
	}
	if err != nil {
		slog.Error("Failed to fetch dashboard data", "user_id", userID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to fetch dashboard data",
			Code:  string(domainerror.ErrCodeSnapshotFailed),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
