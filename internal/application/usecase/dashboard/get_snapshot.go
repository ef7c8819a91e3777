// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-copilot/backend/internal/application/adapter"
	"github.com/finance-copilot/backend/internal/domain/entity"
)

// recentExpenseLimit caps how many expenses a snapshot carries.
const recentExpenseLimit = 50

// Summary holds the values derived from a snapshot. They are computed on
// every read and never stored.
type Summary struct {
	TotalBalance      decimal.Decimal
	MonthlySpending   decimal.Decimal
	PrimaryGoal       *entity.Goal
	InvestmentAccount *entity.Account
	TotalPoints       int64
}

// GetSnapshotInput represents the input for snapshot retrieval.
type GetSnapshotInput struct {
	UserID string
}

// GetSnapshotOutput represents the assembled dashboard snapshot.
type GetSnapshotOutput struct {
	Aggregate *entity.UserAggregate
	Summary   Summary
}

// GetSnapshotUseCase assembles the consolidated dashboard snapshot for one
// user. It is a pure read: when no user row exists it returns
// domainerror.ErrUserNotFound and the caller decides whether to provision.
type GetSnapshotUseCase struct {
	userRepo      adapter.UserRepository
	accountRepo   adapter.AccountRepository
	goalRepo      adapter.GoalRepository
	budgetRepo    adapter.BudgetRepository
	challengeRepo adapter.ChallengeRepository
	expenseRepo   adapter.ExpenseRepository
	pointsLedger  adapter.PointsLedger
	now           func() time.Time
}

// NewGetSnapshotUseCase creates a new GetSnapshotUseCase instance.
func NewGetSnapshotUseCase(
	userRepo adapter.UserRepository,
	accountRepo adapter.AccountRepository,
	goalRepo adapter.GoalRepository,
	budgetRepo adapter.BudgetRepository,
	challengeRepo adapter.ChallengeRepository,
	expenseRepo adapter.ExpenseRepository,
	pointsLedger adapter.PointsLedger,
) *GetSnapshotUseCase {
	return &GetSnapshotUseCase{
		userRepo:      userRepo,
		accountRepo:   accountRepo,
		goalRepo:      goalRepo,
		budgetRepo:    budgetRepo,
		challengeRepo: challengeRepo,
		expenseRepo:   expenseRepo,
		pointsLedger:  pointsLedger,
		now:           time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin the budget
// month/year filter.
func (uc *GetSnapshotUseCase) WithClock(now func() time.Time) *GetSnapshotUseCase {
	uc.now = now
	return uc
}

// Execute performs the snapshot retrieval.
func (uc *GetSnapshotUseCase) Execute(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.userRepo.FindProfileByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	accounts, err := uc.accountRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	// Budgets are scoped to the server's current calendar month at request time.
	currentTime := uc.now()
	budgets, err := uc.budgetRepo.FindByUserAndPeriod(ctx, input.UserID, int(currentTime.Month()), currentTime.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	challenges, err := uc.challengeRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load challenges: %w", err)
	}

	expenses, err := uc.expenseRepo.FindRecentByUserID(ctx, input.UserID, recentExpenseLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	aggregate := &entity.UserAggregate{
		User:       user,
		Profile:    profile,
		Accounts:   accounts,
		Goals:      goals,
		Budgets:    budgets,
		Challenges: challenges,
		Expenses:   expenses,
	}

	return &GetSnapshotOutput{
		Aggregate: aggregate,
		Summary:   uc.deriveSummary(ctx, aggregate),
	}, nil
}

// deriveSummary computes the presentation metrics for a snapshot.
func (uc *GetSnapshotUseCase) deriveSummary(ctx context.Context, aggregate *entity.UserAggregate) Summary {
	summary := Summary{
		TotalBalance:      decimal.Zero,
		MonthlySpending:   decimal.Zero,
		PrimaryGoal:       selectPrimaryGoal(aggregate.Goals),
		InvestmentAccount: selectInvestmentAccount(aggregate.Accounts),
	}

	for _, account := range aggregate.Accounts {
		summary.TotalBalance = summary.TotalBalance.Add(account.Balance)
	}

	for _, budget := range aggregate.Budgets {
		summary.MonthlySpending = summary.MonthlySpending.Add(budget.Spent)
	}

	// The point tally is display-only; a ledger failure degrades to zero
	// instead of failing the whole snapshot.
	total, err := uc.pointsLedger.Total(ctx, aggregate.User.ID)
	if err != nil {
		slog.Warn("Failed to read points tally", "user_id", aggregate.User.ID, "error", err)
		total = 0
	}
	summary.TotalPoints = total

	return summary
}

// selectPrimaryGoal picks the goal for headline display: the first goal with
// High priority, else the first goal in insertion order.
func selectPrimaryGoal(goals []*entity.Goal) *entity.Goal {
	for _, goal := range goals {
		if goal.Priority == entity.GoalPriorityHigh {
			return goal
		}
	}
	if len(goals) > 0 {
		return goals[0]
	}
	return nil
}

// selectInvestmentAccount returns the first account of type investment.
func selectInvestmentAccount(accounts []*entity.Account) *entity.Account {
	for _, account := range accounts {
		if account.Type == entity.AccountTypeInvestment {
			return account
		}
	}
	return nil
}
