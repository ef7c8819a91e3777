// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-copilot/backend/internal/application/adapter"
	domainerror "github.com/finance-copilot/backend/internal/domain/error"
)

// ProvisionUserInput represents the input for first-use provisioning.
type ProvisionUserInput struct {
	UserID string
}

// ProvisionUserUseCase creates a user together with their default demo
// records. Provisioning is an explicit operation invoked once when a user id
// first appears; snapshot reads stay side-effect free.
type ProvisionUserUseCase struct {
	userRepo     adapter.UserRepository
	pointsLedger adapter.PointsLedger
	now          func() time.Time
}

// NewProvisionUserUseCase creates a new ProvisionUserUseCase instance.
func NewProvisionUserUseCase(userRepo adapter.UserRepository, pointsLedger adapter.PointsLedger) *ProvisionUserUseCase {
	return &ProvisionUserUseCase{
		userRepo:     userRepo,
		pointsLedger: pointsLedger,
		now:          time.Now,
	}
}

// WithClock overrides the time source used for seed dates.
func (uc *ProvisionUserUseCase) WithClock(now func() time.Time) *ProvisionUserUseCase {
	uc.now = now
	return uc
}

// Execute performs the provisioning. All rows are created in one transaction
// so a concurrent request never observes a half-seeded user.
func (uc *ProvisionUserUseCase) Execute(ctx context.Context, input ProvisionUserInput) error {
	seed := demoSeed(input.UserID, uc.now().UTC())

	if err := uc.userRepo.CreateWithDefaults(ctx, seed); err != nil {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeProvisioningFailed,
			"failed to provision user",
			err,
		)
	}

	// The starting tally is display-only; failing to set it must not undo
	// the provisioned records.
	if err := uc.pointsLedger.Initialize(ctx, input.UserID, initialPointsBalance); err != nil {
		slog.Warn("Failed to initialize points tally", "user_id", input.UserID, "error", err)
	}

	slog.Info("Provisioned demo user", "user_id", input.UserID)
	return nil
}
