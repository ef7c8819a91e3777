// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/finance-copilot/backend/internal/application/adapter"
	"github.com/finance-copilot/backend/internal/domain/entity"
	domainerror "github.com/finance-copilot/backend/internal/domain/error"
	"github.com/finance-copilot/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindProfileByUserID retrieves the financial profile for a user.
func (r *userRepository) FindProfileByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProfileNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// CreateWithDefaults creates a user together with all nested default records
// in a single transaction, so a failed seed leaves no partial rows behind.
func (r *userRepository) CreateWithDefaults(ctx context.Context, aggregate *entity.UserAggregate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.UserFromEntity(aggregate.User)).Error; err != nil {
			return err
		}
		if aggregate.Profile != nil {
			if err := tx.Create(model.ProfileFromEntity(aggregate.Profile)).Error; err != nil {
				return err
			}
		}
		for _, account := range aggregate.Accounts {
			if err := tx.Create(model.AccountFromEntity(account)).Error; err != nil {
				return err
			}
		}
		for _, goal := range aggregate.Goals {
			if err := tx.Create(model.GoalFromEntity(goal)).Error; err != nil {
				return err
			}
		}
		for _, budget := range aggregate.Budgets {
			if err := tx.Create(model.BudgetFromEntity(budget)).Error; err != nil {
				return err
			}
		}
		for _, challenge := range aggregate.Challenges {
			if err := tx.Create(model.ChallengeFromEntity(challenge)).Error; err != nil {
				return err
			}
		}
		for _, expense := range aggregate.Expenses {
			if err := tx.Create(model.ExpenseFromEntity(expense)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
