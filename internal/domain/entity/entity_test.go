package entity

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		target  int64
		current int64
		want    float64
	}{
		{"partial progress", 15000, 3200, 3200.0 / 15000.0},
		{"zero target reads as zero", 0, 500, 0},
		{"overfunded goal clamps to one", 1000, 1500, 1},
		{"untouched goal", 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := NewGoal(DemoUserID, "goal", "", decimal.NewFromInt(tt.target), decimal.NewFromInt(tt.current), time.Now(), "savings", GoalPriorityMedium)

			if got := goal.Progress(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected progress %v, got %v", tt.want, got)
			}
		})
	}
}

func TestChallengeComplete(t *testing.T) {
	challenge := NewChallenge(DemoUserID, "Coffee Break Challenge", "", nil, 5, "coffee", 50)
	challenge.CurrentDays = 3
	endedAt := time.Date(2024, time.April, 20, 9, 30, 0, 0, time.UTC)

	challenge.Complete(endedAt)

	if !challenge.IsCompleted() {
		t.Error("expected the challenge to report completed")
	}
	if challenge.CurrentDays != 0 {
		t.Errorf("expected the day counter to reset, got %d", challenge.CurrentDays)
	}
	if challenge.EndDate == nil || !challenge.EndDate.Equal(endedAt) {
		t.Errorf("expected end date %v, got %v", endedAt, challenge.EndDate)
	}
	if !challenge.UpdatedAt.Equal(endedAt) {
		t.Errorf("expected UpdatedAt to track the completion time, got %v", challenge.UpdatedAt)
	}
}
