// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of financial account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
)

// Account represents a financial account held by a user. The balance is the
// authoritative stored value; it is never recomputed from expenses.
type Account struct {
	ID          uuid.UUID
	UserID      string
	Name        string
	Type        AccountType
	Balance     decimal.Decimal
	Institution string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(userID, name string, accountType AccountType, balance decimal.Decimal, institution string) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Type:        accountType,
		Balance:     balance,
		Institution: institution,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
