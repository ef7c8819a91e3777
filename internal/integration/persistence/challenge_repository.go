// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-copilot/backend/internal/application/adapter"
	"github.com/finance-copilot/backend/internal/domain/entity"
	domainerror "github.com/finance-copilot/backend/internal/domain/error"
	"github.com/finance-copilot/backend/internal/integration/persistence/model"
)

// challengeRepository implements the adapter.ChallengeRepository interface.
type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository creates a new challenge repository instance.
func NewChallengeRepository(db *gorm.DB) adapter.ChallengeRepository {
	return &challengeRepository{
		db: db,
	}
}

// Create creates a new challenge in the database.
func (r *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	challengeModel := model.ChallengeFromEntity(challenge)
	result := r.db.WithContext(ctx).Create(challengeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a challenge by its ID.
func (r *challengeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var challengeModel model.ChallengeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&challengeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrChallengeNotFound
		}
		return nil, result.Error
	}
	return challengeModel.ToEntity(), nil
}

// FindActiveByUserID retrieves the active challenges for a given user.
func (r *challengeRepository) FindActiveByUserID(ctx context.Context, userID string) ([]*entity.Challenge, error) {
	var challengeModels []model.ChallengeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.ChallengeStatusActive)).
		Order("created_at ASC").
		Find(&challengeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	challenges := make([]*entity.Challenge, len(challengeModels))
	for i, cm := range challengeModels {
		challenges[i] = cm.ToEntity()
	}
	return challenges, nil
}

// Update updates an existing challenge in the database.
func (r *challengeRepository) Update(ctx context.Context, challenge *entity.Challenge) error {
	challengeModel := model.ChallengeFromEntity(challenge)
	result := r.db.WithContext(ctx).Save(challengeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
