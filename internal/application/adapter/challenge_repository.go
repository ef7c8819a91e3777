// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// ChallengeRepository defines the interface for challenge persistence operations.
type ChallengeRepository interface {
	// Create creates a new challenge in the database.
	Create(ctx context.Context, challenge *entity.Challenge) error

	// FindByID retrieves a challenge by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)

	// FindActiveByUserID retrieves the active challenges for a given user.
	// Completed challenges drop out of the live view.
	FindActiveByUserID(ctx context.Context, userID string) ([]*entity.Challenge, error)

	// Update updates an existing challenge in the database.
	Update(ctx context.Context, challenge *entity.Challenge) error
}
