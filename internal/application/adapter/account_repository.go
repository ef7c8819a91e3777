// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// FindByUserID retrieves all accounts for a given user in insertion order.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Account, error)
}
