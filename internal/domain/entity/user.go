// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemoUserID is the sentinel identity used when a caller does not supply one.
const DemoUserID = "demo-user"

// RiskProfile represents a user's risk tolerance category.
type RiskProfile string

const (
	RiskProfileConservative RiskProfile = "Conservative"
	RiskProfileModerate     RiskProfile = "Moderate"
	RiskProfileAggressive   RiskProfile = "Aggressive"
)

// User represents a user in the Finance Co-Pilot system.
// The ID is a caller-supplied identifier rather than a generated UUID because
// identities originate outside this service ("demo-user" being the default).
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new User entity.
func NewUser(id, email, name string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        id,
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Profile holds the financial profile attached one-to-one to a User.
type Profile struct {
	ID            uuid.UUID
	UserID        string
	MonthlyIncome decimal.Decimal
	RiskProfile   RiskProfile
	Occupation    *string
	Age           *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProfile creates a new Profile entity.
func NewProfile(userID string, monthlyIncome decimal.Decimal, riskProfile RiskProfile) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:            uuid.New(),
		UserID:        userID,
		MonthlyIncome: monthlyIncome,
		RiskProfile:   riskProfile,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
