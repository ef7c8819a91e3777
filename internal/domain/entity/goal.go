// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalPriority represents the priority level of a savings goal.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "Low"
	GoalPriorityMedium GoalPriority = "Medium"
	GoalPriorityHigh   GoalPriority = "High"
)

// Goal represents a savings goal in the Finance Co-Pilot system.
type Goal struct {
	ID            uuid.UUID
	UserID        string
	Title         string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	Category      string
	Priority      GoalPriority
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(userID, title, description string, targetAmount, currentAmount decimal.Decimal, targetDate time.Time, category string, priority GoalPriority) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		Category:      category,
		Priority:      priority,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Progress returns the completion ratio of the goal, clamped to [0, 1].
// The ratio is derived for display and never stored.
func (g *Goal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	ratio, _ := g.CurrentAmount.Div(g.TargetAmount).Float64()
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
