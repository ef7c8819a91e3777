// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// No unique index on (user_id, category, month, year): the original system
// tolerated duplicate-category rows and enforcing uniqueness here could
// reject data it accepted.
type BudgetModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    string          `gorm:"type:varchar(64);not null;index:idx_budgets_user_period"`
	Category  string          `gorm:"type:varchar(50);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Spent     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month     int             `gorm:"not null;index:idx_budgets_user_period"`
	Year      int             `gorm:"not null;index:idx_budgets_user_period"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		UserID:    m.UserID,
		Category:  m.Category,
		Amount:    m.Amount,
		Spent:     m.Spent,
		Month:     m.Month,
		Year:      m.Year,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:        budget.ID,
		UserID:    budget.UserID,
		Category:  budget.Category,
		Amount:    budget.Amount,
		Spent:     budget.Spent,
		Month:     budget.Month,
		Year:      budget.Year,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
