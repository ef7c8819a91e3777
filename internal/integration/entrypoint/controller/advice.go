// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-copilot/backend/internal/application/usecase/advice"
	domainerror "github.com/finance-copilot/backend/internal/domain/error"
	"github.com/finance-copilot/backend/internal/integration/entrypoint/dto"
)

// AdviceController handles the AI chat endpoint.
type AdviceController struct {
	requestAdviceUseCase *advice.RequestAdviceUseCase
}

// NewAdviceController creates a new advice controller instance.
func NewAdviceController(requestAdviceUseCase *advice.RequestAdviceUseCase) *AdviceController {
	return &AdviceController{
		requestAdviceUseCase: requestAdviceUseCase,
	}
}

// Chat handles POST /ai-chat requests. Apart from a missing message, the
// endpoint always answers 200 with best-effort text; provider failures are
// absorbed by the local fallback and never surfaced to the client.
func (c *AdviceController) Chat(ctx *gin.Context) {
	var req dto.AdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyMessage),
		})
		return
	}

	if req.Message == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Message is required",
			Code:  string(domainerror.ErrCodeEmptyMessage),
		})
		return
	}

	input := advice.RequestAdviceInput{
		Message:             req.Message,
		UserProfile:         req.UserProfile,
		DashboardData:       req.DashboardData,
		ConversationHistory: req.ConversationHistory,
	}

	output := c.requestAdviceUseCase.Execute(ctx.Request.Context(), input)

	ctx.JSON(http.StatusOK, dto.AdviceResponse{
		Response:  output.Response,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
