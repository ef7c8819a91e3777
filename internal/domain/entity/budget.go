// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a per-category spending budget scoped to one calendar
// month. Uniqueness per (user, category, month, year) is intended but not
// enforced; duplicate-category rows are tolerated.
type Budget struct {
	ID        uuid.UUID
	UserID    string
	Category  string
	Amount    decimal.Decimal
	Spent     decimal.Decimal
	Month     int // 1-12
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, category string, amount, spent decimal.Decimal, month, year int) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Spent:     spent,
		Month:     month,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
