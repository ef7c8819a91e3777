// Package entity defines the core business entities for the domain layer.
package entity

// UserAggregate bundles a user with all of their financial records. It is
// both the read model assembled for the dashboard and the payload used when
// provisioning a new user with default records.
type UserAggregate struct {
	User       *User
	Profile    *Profile
	Accounts   []*Account
	Goals      []*Goal
	Budgets    []*Budget
	Challenges []*Challenge
	Expenses   []*Expense
}
