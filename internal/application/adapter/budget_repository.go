// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// FindByUserAndPeriod retrieves the budgets for a user scoped to one
	// calendar month. There is no historical range query.
	FindByUserAndPeriod(ctx context.Context, userID string, month, year int) ([]*entity.Budget, error)
}
