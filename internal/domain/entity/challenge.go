// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChallengeStatus represents the lifecycle state of a savings challenge.
type ChallengeStatus string

const (
	ChallengeStatusActive    ChallengeStatus = "Active"
	ChallengeStatusCompleted ChallengeStatus = "Completed"
)

// Challenge represents a time-boxed savings challenge. Only Active
// challenges are surfaced on the dashboard; once Completed a challenge
// drops out of the live view.
type Challenge struct {
	ID            uuid.UUID
	UserID        string
	Title         string
	Description   string
	TargetAmount  *decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDays    int
	CurrentDays   int
	Category      string
	Points        int
	Status        ChallengeStatus
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewChallenge creates a new Challenge entity in the Active state.
func NewChallenge(userID, title, description string, targetAmount *decimal.Decimal, targetDays int, category string, points int) *Challenge {
	now := time.Now().UTC()
	return &Challenge{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDays:    targetDays,
		CurrentDays:   0,
		Category:      category,
		Points:        points,
		Status:        ChallengeStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Complete transitions the challenge to the Completed state. The day counter
// resets so the challenge can be re-run later. Completion is permissive:
// progress is not checked against the target.
func (c *Challenge) Complete(endedAt time.Time) {
	c.Status = ChallengeStatusCompleted
	c.CurrentDays = 0
	c.EndDate = &endedAt
	c.UpdatedAt = endedAt
}

// IsCompleted reports whether the challenge has been completed.
func (c *Challenge) IsCompleted() bool {
	return c.Status == ChallengeStatusCompleted
}
