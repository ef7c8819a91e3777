// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// ChallengeModel represents the challenges table in the database.
type ChallengeModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID        string           `gorm:"type:varchar(64);not null;index"`
	Title         string           `gorm:"type:varchar(200);not null"`
	Description   string           `gorm:"type:text"`
	TargetAmount  *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CurrentAmount decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	TargetDays    int              `gorm:"not null"`
	CurrentDays   int              `gorm:"not null;default:0"`
	Category      string           `gorm:"type:varchar(50)"`
	Points        int              `gorm:"not null;default:0"`
	Status        string           `gorm:"type:varchar(20);not null;default:'Active';index"`
	EndDate       *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the ChallengeModel.
func (ChallengeModel) TableName() string {
	return "challenges"
}

// ToEntity converts a ChallengeModel to a domain Challenge entity.
func (m *ChallengeModel) ToEntity() *entity.Challenge {
	return &entity.Challenge{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDays:    m.TargetDays,
		CurrentDays:   m.CurrentDays,
		Category:      m.Category,
		Points:        m.Points,
		Status:        entity.ChallengeStatus(m.Status),
		EndDate:       m.EndDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ChallengeFromEntity creates a ChallengeModel from a domain Challenge entity.
func ChallengeFromEntity(challenge *entity.Challenge) *ChallengeModel {
	return &ChallengeModel{
		ID:            challenge.ID,
		UserID:        challenge.UserID,
		Title:         challenge.Title,
		Description:   challenge.Description,
		TargetAmount:  challenge.TargetAmount,
		CurrentAmount: challenge.CurrentAmount,
		TargetDays:    challenge.TargetDays,
		CurrentDays:   challenge.CurrentDays,
		Category:      challenge.Category,
		Points:        challenge.Points,
		Status:        string(challenge.Status),
		EndDate:       challenge.EndDate,
		CreatedAt:     challenge.CreatedAt,
		UpdatedAt:     challenge.UpdatedAt,
	}
}
