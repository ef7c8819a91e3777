// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindProfileByUserID retrieves the financial profile for a user.
	FindProfileByUserID(ctx context.Context, userID string) (*entity.Profile, error)

	// CreateWithDefaults creates a user together with all nested default
	// records in a single transaction. Used for first-use provisioning.
	CreateWithDefaults(ctx context.Context, aggregate *entity.UserAggregate) error
}
