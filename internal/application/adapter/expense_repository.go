// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// FindRecentByUserID retrieves the most recent expenses for a user,
	// ordered by date descending and capped at limit.
	FindRecentByUserID(ctx context.Context, userID string, limit int) ([]*entity.Expense, error)
}
