// Package dto defines request and response payloads for the API endpoints.
package dto

import (
	"time"

	"github.com/finance-copilot/backend/internal/application/usecase/dashboard"
	"github.com/finance-copilot/backend/internal/domain/entity"
)

// ProfileResponse represents a financial profile in API responses.
type ProfileResponse struct {
	ID            string  `json:"id"`
	MonthlyIncome float64 `json:"monthlyIncome"`
	RiskProfile   string  `json:"riskProfile"`
	Occupation    *string `json:"occupation,omitempty"`
	Age           *int    `json:"age,omitempty"`
}

// AccountResponse represents a financial account in API responses.
type AccountResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Balance     float64 `json:"balance"`
	Institution string  `json:"institution"`
}

// GoalResponse represents a savings goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	TargetDate    time.Time `json:"targetDate"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	Progress      float64   `json:"progress"`
}

// BudgetResponse represents a monthly budget in API responses.
type BudgetResponse struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Spent    float64 `json:"spent"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
}

// ExpenseResponse represents an expense record in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// SummaryResponse carries the metrics derived from a snapshot.
type SummaryResponse struct {
	TotalBalance      float64          `json:"totalBalance"`
	MonthlySpending   float64          `json:"monthlySpending"`
	PrimaryGoal       *GoalResponse    `json:"primaryGoal,omitempty"`
	InvestmentAccount *AccountResponse `json:"investmentAccount,omitempty"`
	TotalPoints       int64            `json:"totalPoints"`
}

// DashboardResponse represents the consolidated snapshot returned to the client.
type DashboardResponse struct {
	ID         string              `json:"id"`
	Email      string              `json:"email"`
	Name       string              `json:"name"`
	Profile    *ProfileResponse    `json:"profile"`
	Accounts   []AccountResponse   `json:"accounts"`
	Goals      []GoalResponse      `json:"goals"`
	Budgets    []BudgetResponse    `json:"budgets"`
	Challenges []ChallengeResponse `json:"challenges"`
	Expenses   []ExpenseResponse   `json:"expenses"`
	Summary    SummaryResponse     `json:"summary"`
}

// ToDashboardResponse converts a snapshot use-case output to its API representation.
func ToDashboardResponse(output *dashboard.GetSnapshotOutput) DashboardResponse {
	aggregate := output.Aggregate

	response := DashboardResponse{
		ID:         aggregate.User.ID,
		Email:      aggregate.User.Email,
		Name:       aggregate.User.Name,
		Accounts:   make([]AccountResponse, len(aggregate.Accounts)),
		Goals:      make([]GoalResponse, len(aggregate.Goals)),
		Budgets:    make([]BudgetResponse, len(aggregate.Budgets)),
		Challenges: make([]ChallengeResponse, len(aggregate.Challenges)),
		Expenses:   make([]ExpenseResponse, len(aggregate.Expenses)),
	}

	if aggregate.Profile != nil {
		profile := ToProfileResponse(aggregate.Profile)
		response.Profile = &profile
	}
	for i, account := range aggregate.Accounts {
		response.Accounts[i] = ToAccountResponse(account)
	}
	for i, goal := range aggregate.Goals {
		response.Goals[i] = ToGoalResponse(goal)
	}
	for i, budget := range aggregate.Budgets {
		response.Budgets[i] = ToBudgetResponse(budget)
	}
	for i, challenge := range aggregate.Challenges {
		response.Challenges[i] = ToChallengeResponse(challenge)
	}
	for i, expense := range aggregate.Expenses {
		response.Expenses[i] = ToExpenseResponse(expense)
	}

	response.Summary = SummaryResponse{
		TotalBalance:    output.Summary.TotalBalance.InexactFloat64(),
		MonthlySpending: output.Summary.MonthlySpending.InexactFloat64(),
		TotalPoints:     output.Summary.TotalPoints,
	}
	if output.Summary.PrimaryGoal != nil {
		goal := ToGoalResponse(output.Summary.PrimaryGoal)
		response.Summary.PrimaryGoal = &goal
	}
	if output.Summary.InvestmentAccount != nil {
		account := ToAccountResponse(output.Summary.InvestmentAccount)
		response.Summary.InvestmentAccount = &account
	}

	return response
}

// ToProfileResponse converts a Profile entity to its API representation.
func ToProfileResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:            profile.ID.String(),
		MonthlyIncome: profile.MonthlyIncome.InexactFloat64(),
		RiskProfile:   string(profile.RiskProfile),
		Occupation:    profile.Occupation,
		Age:           profile.Age,
	}
}

// ToAccountResponse converts an Account entity to its API representation.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID.String(),
		Name:        account.Name,
		Type:        string(account.Type),
		Balance:     account.Balance.InexactFloat64(),
		Institution: account.Institution,
	}
}

// ToGoalResponse converts a Goal entity to its API representation.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID.String(),
		Title:         goal.Title,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount.InexactFloat64(),
		CurrentAmount: goal.CurrentAmount.InexactFloat64(),
		TargetDate:    goal.TargetDate,
		Category:      goal.Category,
		Priority:      string(goal.Priority),
		Progress:      goal.Progress(),
	}
}

// ToBudgetResponse converts a Budget entity to its API representation.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:       budget.ID.String(),
		Category: budget.Category,
		Amount:   budget.Amount.InexactFloat64(),
		Spent:    budget.Spent.InexactFloat64(),
		Month:    budget.Month,
		Year:     budget.Year,
	}
}

// ToExpenseResponse converts an Expense entity to its API representation.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Amount:      expense.Amount.InexactFloat64(),
		Category:    expense.Category,
		Description: expense.Description,
		Date:        expense.Date,
	}
}
