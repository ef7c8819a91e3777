// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-copilot/backend/internal/application/usecase/challenge"
	"github.com/finance-copilot/backend/internal/domain/entity"
	domainerror "github.com/finance-copilot/backend/internal/domain/error"
	"github.com/finance-copilot/backend/internal/integration/entrypoint/dto"
)

// ChallengeController handles challenge endpoints.
type ChallengeController struct {
	completeUseCase *challenge.CompleteChallengeUseCase
	createUseCase   *challenge.CreateChallengeUseCase
}

// NewChallengeController creates a new challenge controller instance.
func NewChallengeController(
	completeUseCase *challenge.CompleteChallengeUseCase,
	createUseCase *challenge.CreateChallengeUseCase,
) *ChallengeController {
	return &ChallengeController{
		completeUseCase: completeUseCase,
		createUseCase:   createUseCase,
	}
}

// Complete handles PUT /challenges requests.
func (c *ChallengeController) Complete(ctx *gin.Context) {
	var req dto.CompleteChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingChallengeFields),
		})
		return
	}

	challengeID, err := uuid.Parse(req.ChallengeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid challenge ID format",
			Code:  string(domainerror.ErrCodeMissingChallengeFields),
		})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = entity.DemoUserID
	}

	input := challenge.CompleteChallengeInput{
		ChallengeID: challengeID,
		UserID:      userID,
	}

	output, err := c.completeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrChallengeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Challenge not found",
				Code:  string(domainerror.ErrCodeChallengeNotFound),
			})
			return
		}
		slog.Error("Failed to update challenge", "challenge_id", challengeID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update challenge",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.CompleteChallengeResponse{
		Success:     true,
		Challenge:   dto.ToChallengeResponse(output.Challenge),
		TotalPoints: output.TotalPoints,
	})
}

// Create handles POST /challenges requests.
func (c *ChallengeController) Create(ctx *gin.Context) {
	var req dto.CreateChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingChallengeFields),
		})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = entity.DemoUserID
	}

	input := challenge.CreateChallengeInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TargetDays:  req.TargetDays,
		Category:    req.Category,
		Points:      req.Points,
	}
	if req.TargetAmount != nil {
		amount := decimal.NewFromFloat(*req.TargetAmount)
		input.TargetAmount = &amount
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var challengeErr *domainerror.ChallengeError
		if errors.As(err, &challengeErr) && challengeErr.Code == domainerror.ErrCodeInvalidTargetDays {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: challengeErr.Message,
				Code:  string(challengeErr.Code),
			})
			return
		}
		slog.Error("Failed to create challenge", "user_id", userID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create challenge",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToChallengeResponse(output.Challenge))
}
