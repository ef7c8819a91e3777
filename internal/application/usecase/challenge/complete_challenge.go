// Package challenge contains challenge-related use cases.
package challenge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-copilot/backend/internal/application/adapter"
	"github.com/finance-copilot/backend/internal/domain/entity"
	domainerror "github.com/finance-copilot/backend/internal/domain/error"
)

// completionPoints is the flat award granted on challenge completion. The
// stored Challenge.Points value stays display-only; the tally always moves
// by this constant.
const completionPoints = 100

// CompleteChallengeInput represents the input for challenge completion.
type CompleteChallengeInput struct {
	ChallengeID uuid.UUID
	UserID      string
}

// CompleteChallengeOutput represents the output of challenge completion.
type CompleteChallengeOutput struct {
	Challenge   *entity.Challenge
	TotalPoints int64
}

// CompleteChallengeUseCase transitions a challenge to the Completed state and
// awards points. Completion is permissive: any active challenge can be
// completed regardless of progress.
type CompleteChallengeUseCase struct {
	challengeRepo adapter.ChallengeRepository
	pointsLedger  adapter.PointsLedger
	now           func() time.Time
}

// NewCompleteChallengeUseCase creates a new CompleteChallengeUseCase instance.
func NewCompleteChallengeUseCase(challengeRepo adapter.ChallengeRepository, pointsLedger adapter.PointsLedger) *CompleteChallengeUseCase {
	return &CompleteChallengeUseCase{
		challengeRepo: challengeRepo,
		pointsLedger:  pointsLedger,
		now:           time.Now,
	}
}

// WithClock overrides the time source used for the completion timestamp.
func (uc *CompleteChallengeUseCase) WithClock(now func() time.Time) *CompleteChallengeUseCase {
	uc.now = now
	return uc
}

// Execute performs the challenge completion.
func (uc *CompleteChallengeUseCase) Execute(ctx context.Context, input CompleteChallengeInput) (*CompleteChallengeOutput, error) {
	challenge, err := uc.challengeRepo.FindByID(ctx, input.ChallengeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrChallengeNotFound) {
			return nil, domainerror.NewChallengeError(
				domainerror.ErrCodeChallengeNotFound,
				"challenge not found",
				domainerror.ErrChallengeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find challenge: %w", err)
	}

	// A second completion is a state-level no-op: the row stays Completed
	// and no further points are awarded. Concurrent completions can still
	// race to a double award; accepted risk, there is no guard.
	if challenge.IsCompleted() {
		total := uc.readTotal(ctx, input.UserID)
		return &CompleteChallengeOutput{Challenge: challenge, TotalPoints: total}, nil
	}

	challenge.Complete(uc.now().UTC())

	if err := uc.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, domainerror.NewChallengeError(
			domainerror.ErrCodeChallengeUpdateFailed,
			"failed to update challenge",
			err,
		)
	}

	// Best-effort award. There is no compensating transaction: a ledger
	// failure leaves the challenge completed with no points granted.
	total, err := uc.pointsLedger.Award(ctx, input.UserID, completionPoints)
	if err != nil {
		slog.Warn("Failed to award challenge points",
			"user_id", input.UserID,
			"challenge_id", input.ChallengeID,
			"error", err,
		)
		total = 0
	}

	return &CompleteChallengeOutput{
		Challenge:   challenge,
		TotalPoints: total,
	}, nil
}

func (uc *CompleteChallengeUseCase) readTotal(ctx context.Context, userID string) int64 {
	total, err := uc.pointsLedger.Total(ctx, userID)
	if err != nil {
		slog.Warn("Failed to read points tally", "user_id", userID, "error", err)
		return 0
	}
	return total
}
