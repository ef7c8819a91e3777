// Package dto defines request and response payloads for the API endpoints.
package dto

import (
	"time"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// CompleteChallengeRequest represents the body of PUT /challenges.
type CompleteChallengeRequest struct {
	ChallengeID string `json:"challengeId" binding:"required"`
	UserID      string `json:"userId"`
}

// CreateChallengeRequest represents the body of POST /challenges.
type CreateChallengeRequest struct {
	UserID       string   `json:"userId"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	TargetAmount *float64 `json:"targetAmount"`
	TargetDays   int      `json:"targetDays" binding:"required"`
	Category     string   `json:"category"`
	Points       int      `json:"points"`
}

// ChallengeResponse represents a challenge in API responses.
type ChallengeResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	TargetAmount  *float64   `json:"targetAmount,omitempty"`
	CurrentAmount float64    `json:"currentAmount"`
	TargetDays    int        `json:"targetDays"`
	CurrentDays   int        `json:"currentDays"`
	Category      string     `json:"category"`
	Points        int        `json:"points"`
	Status        string     `json:"status"`
	EndDate       *time.Time `json:"endDate,omitempty"`
}

// CompleteChallengeResponse represents the body returned by PUT /challenges.
type CompleteChallengeResponse struct {
	Success     bool              `json:"success"`
	Challenge   ChallengeResponse `json:"challenge"`
	TotalPoints int64             `json:"totalPoints"`
}

// ToChallengeResponse converts a Challenge entity to its API representation.
func ToChallengeResponse(challenge *entity.Challenge) ChallengeResponse {
	response := ChallengeResponse{
		ID:            challenge.ID.String(),
		Title:         challenge.Title,
		Description:   challenge.Description,
		CurrentAmount: challenge.CurrentAmount.InexactFloat64(),
		TargetDays:    challenge.TargetDays,
		CurrentDays:   challenge.CurrentDays,
		Category:      challenge.Category,
		Points:        challenge.Points,
		Status:        string(challenge.Status),
		EndDate:       challenge.EndDate,
	}
	if challenge.TargetAmount != nil {
		amount := challenge.TargetAmount.InexactFloat64()
		response.TargetAmount = &amount
	}
	return response
}
