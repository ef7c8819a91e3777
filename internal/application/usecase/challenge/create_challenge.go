// Package challenge contains challenge-related use cases.
package challenge

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-copilot/backend/internal/application/adapter"
	"github.com/finance-copilot/backend/internal/domain/entity"
	domainerror "github.com/finance-copilot/backend/internal/domain/error"
)

// CreateChallengeInput represents the input for challenge creation.
type CreateChallengeInput struct {
	UserID       string
	Title        string
	Description  string
	TargetAmount *decimal.Decimal // Optional
	TargetDays   int
	Category     string
	Points       int
}

// CreateChallengeOutput represents the output of challenge creation.
type CreateChallengeOutput struct {
	Challenge *entity.Challenge
}

// CreateChallengeUseCase handles challenge creation logic.
type CreateChallengeUseCase struct {
	challengeRepo adapter.ChallengeRepository
}

// NewCreateChallengeUseCase creates a new CreateChallengeUseCase instance.
func NewCreateChallengeUseCase(challengeRepo adapter.ChallengeRepository) *CreateChallengeUseCase {
	return &CreateChallengeUseCase{
		challengeRepo: challengeRepo,
	}
}

// Execute performs the challenge creation. New challenges always start
// Active with zeroed progress.
func (uc *CreateChallengeUseCase) Execute(ctx context.Context, input CreateChallengeInput) (*CreateChallengeOutput, error) {
	if input.TargetDays <= 0 {
		return nil, domainerror.NewChallengeError(
			domainerror.ErrCodeInvalidTargetDays,
			"target days must be greater than zero",
			domainerror.ErrInvalidTargetDays,
		)
	}

	challenge := entity.NewChallenge(
		input.UserID,
		input.Title,
		input.Description,
		input.TargetAmount,
		input.TargetDays,
		input.Category,
		input.Points,
	)

	if err := uc.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	return &CreateChallengeOutput{
		Challenge: challenge,
	}, nil
}
