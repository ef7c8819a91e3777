// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single spending record. Expenses are append-only.
type Expense struct {
	ID          uuid.UUID
	UserID      string
	Amount      decimal.Decimal
	Category    string
	Description *string
	Date        time.Time
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(userID string, amount decimal.Decimal, category string, description *string, date time.Time) *Expense {
	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
