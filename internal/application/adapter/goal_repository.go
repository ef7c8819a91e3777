// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// FindByUserID retrieves all goals for a given user in insertion order.
	// Insertion order matters: it is the tie-break for primary-goal selection.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Goal, error)
}
