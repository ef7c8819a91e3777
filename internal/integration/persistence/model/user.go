// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ProfileModel represents the profiles table in the database.
type ProfileModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RiskProfile   string          `gorm:"type:varchar(20);not null;default:'Moderate'"`
	Occupation    *string         `gorm:"type:varchar(100)"`
	Age           *int
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	return &entity.Profile{
		ID:            m.ID,
		UserID:        m.UserID,
		MonthlyIncome: m.MonthlyIncome,
		RiskProfile:   entity.RiskProfile(m.RiskProfile),
		Occupation:    m.Occupation,
		Age:           m.Age,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileFromEntity(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:            profile.ID,
		UserID:        profile.UserID,
		MonthlyIncome: profile.MonthlyIncome,
		RiskProfile:   string(profile.RiskProfile),
		Occupation:    profile.Occupation,
		Age:           profile.Age,
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     profile.UpdatedAt,
	}
}
