// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-copilot/backend/internal/domain/entity"
)

// initialPointsBalance is the tally a freshly provisioned user starts with.
const initialPointsBalance = 1250

// demoSeed builds the default records a brand-new user is provisioned with.
// Values are fixed demo fixtures. CreatedAt is staggered per row so that
// insertion order stays reproducible under insertion-order queries.
func demoSeed(userID string, now time.Time) *entity.UserAggregate {
	occupation := "Software Engineer"
	age := 28

	user := entity.NewUser(userID, "demo@financeai.com", "Demo User")

	profile := entity.NewProfile(userID, decimal.NewFromInt(5200), entity.RiskProfileModerate)
	profile.Occupation = &occupation
	profile.Age = &age

	accounts := []*entity.Account{
		entity.NewAccount(userID, "Main Checking", entity.AccountTypeChecking, decimal.NewFromInt(12450), "Demo Bank"),
		entity.NewAccount(userID, "Savings Account", entity.AccountTypeSavings, decimal.NewFromInt(8750), "Demo Bank"),
		entity.NewAccount(userID, "Investment Portfolio", entity.AccountTypeInvestment, decimal.NewFromInt(8750), "Investment Firm"),
	}

	goals := []*entity.Goal{
		entity.NewGoal(userID, "Emergency Fund", "Build 6 months of expenses",
			decimal.NewFromInt(15000), decimal.NewFromInt(3200),
			now.AddDate(0, 0, 365), "emergency", entity.GoalPriorityHigh),
		entity.NewGoal(userID, "New Car", "Save for a reliable vehicle",
			decimal.NewFromInt(25000), decimal.NewFromInt(5000),
			now.AddDate(0, 0, 548), "car", entity.GoalPriorityMedium),
	}

	month := int(now.Month())
	year := now.Year()
	budgets := []*entity.Budget{
		entity.NewBudget(userID, "dining", decimal.NewFromInt(700), decimal.NewFromInt(850), month, year),
		entity.NewBudget(userID, "transport", decimal.NewFromInt(450), decimal.NewFromInt(420), month, year),
		entity.NewBudget(userID, "shopping", decimal.NewFromInt(400), decimal.NewFromInt(380), month, year),
		entity.NewBudget(userID, "entertainment", decimal.NewFromInt(200), decimal.NewFromInt(250), month, year),
		entity.NewBudget(userID, "bills", decimal.NewFromInt(650), decimal.NewFromInt(640), month, year),
		entity.NewBudget(userID, "other", decimal.NewFromInt(350), decimal.NewFromInt(300), month, year),
	}

	coffeeTarget := decimal.NewFromInt(25)
	mealPrepTarget := decimal.NewFromInt(120)
	challenges := []*entity.Challenge{
		entity.NewChallenge(userID, "Coffee Break Challenge", "Skip buying coffee for a week and save $25",
			&coffeeTarget, 5, "coffee", 50),
		entity.NewChallenge(userID, "Meal Prep Master", "Prepare meals at home for 2 weeks and save $120",
			&mealPrepTarget, 14, "dining", 100),
	}
	challenges[0].CurrentAmount = decimal.NewFromInt(15)
	challenges[0].CurrentDays = 3
	challenges[1].CurrentAmount = decimal.NewFromInt(35)
	challenges[1].CurrentDays = 4

	expenses := []*entity.Expense{
		newSeedExpense(userID, "45.50", "dining", "Restaurant dinner", now.AddDate(0, 0, -1)),
		newSeedExpense(userID, "85.00", "transport", "Gas station", now.AddDate(0, 0, -2)),
		newSeedExpense(userID, "120.00", "shopping", "Grocery store", now.AddDate(0, 0, -3)),
		newSeedExpense(userID, "25.00", "entertainment", "Movie tickets", now.AddDate(0, 0, -4)),
		newSeedExpense(userID, "200.00", "bills", "Electricity bill", now.AddDate(0, 0, -5)),
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
	staggerCreationTimes(aggregate, now)
	return aggregate
}

func newSeedExpense(userID, amount, category, description string, date time.Time) *entity.Expense {
	value, _ := decimal.NewFromString(amount)
	return entity.NewExpense(userID, value, category, &description, date)
}

// staggerCreationTimes assigns strictly increasing CreatedAt values within
// each record list. Databases with coarse timestamp precision would
// otherwise lose the insertion order the primary-goal tie-break relies on.
func staggerCreationTimes(aggregate *entity.UserAggregate, base time.Time) {
	for i, goal := range aggregate.Goals {
		goal.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
	}
	for i, account := range aggregate.Accounts {
		account.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
	}
	for i, challenge := range aggregate.Challenges {
		challenge.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
	}
	for i, budget := range aggregate.Budgets {
		budget.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
	}
}
