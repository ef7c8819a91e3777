// Package advice contains the AI financial-advice use case.
package advice

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FinancialSnapshot is the condensed account picture embedded in an advice
// prompt: income, per-category spending, what is free to invest, the goal
// being saved for, and the user's risk category.
type FinancialSnapshot struct {
	Income            decimal.Decimal
	ExpenseByCategory map[string]decimal.Decimal
	Savings           decimal.Decimal
	GoalDescription   string
	GoalAmount        decimal.Decimal
	RiskProfile       string
}

// ConversationMessage is one prior exchange in the chat, replayed so the
// model keeps context across turns.
type ConversationMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// expenseCategoryOrder fixes the category listing order in prompts so the
// same snapshot always yields the same prompt text.
var expenseCategoryOrder = []string{"dining", "transport", "shopping", "entertainment", "bills", "other"}

// BuildSnapshotPrompt constructs the advisor prompt from a structured
// financial snapshot plus the verbatim user question.
func BuildSnapshotPrompt(question string, snapshot FinancialSnapshot) string {
	total := decimal.Zero
	for _, amount := range snapshot.ExpenseByCategory {
		total = total.Add(amount)
	}

	var categories []string
	seen := make(map[string]bool)
	for _, category := range expenseCategoryOrder {
		if amount, ok := snapshot.ExpenseByCategory[category]; ok {
			categories = append(categories, fmt.Sprintf("%s: $%s", titleCase(category), amount.StringFixed(0)))
			seen[category] = true
		}
	}
	for category, amount := range snapshot.ExpenseByCategory {
		if !seen[category] {
			categories = append(categories, fmt.Sprintf("%s: $%s", titleCase(category), amount.StringFixed(0)))
		}
	}

	goalDescription := snapshot.GoalDescription
	if goalDescription == "" {
		goalDescription = "Emergency Fund"
	}

	riskProfile := snapshot.RiskProfile
	if riskProfile == "" {
		riskProfile = "Moderate"
	}

	var sb strings.Builder
	sb.WriteString("You are an AI financial advisor. The user has the following financial data:\n\n")
	sb.WriteString(fmt.Sprintf("- Monthly income: $%s\n", snapshot.Income.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("- Monthly expenses: $%s (%s)\n", total.StringFixed(0), strings.Join(categories, ", ")))
	sb.WriteString(fmt.Sprintf("- Savings goal: %s - $%s\n", goalDescription, snapshot.GoalAmount.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("- Available to invest: $%s\n", snapshot.Savings.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("- Risk profile: %s\n\n", riskProfile))
	sb.WriteString(fmt.Sprintf("Based on this information, provide personalized financial advice for this question: %s\n\n", question))
	sb.WriteString("Keep your response concise and actionable, with specific numbers and recommendations.")
	return sb.String()
}

// BuildChatPrompt constructs the co-pilot chat prompt from the raw profile
// and dashboard payloads the client sends, the conversation so far, and the
// verbatim user question.
func BuildChatPrompt(question string, userProfile, dashboardData map[string]any, history []ConversationMessage) string {
	var sb strings.Builder
	sb.WriteString("You are an AI Financial Co-Pilot assistant. You help users with personal finance management, budgeting, investment advice, and financial planning.\n\n")

	sb.WriteString("User Profile: ")
	sb.WriteString(marshalSection(userProfile))
	sb.WriteString("\n\nCurrent Financial Data: ")
	sb.WriteString(marshalSection(dashboardData))

	sb.WriteString("\n\nRecent Conversation:\n")
	if len(history) == 0 {
		sb.WriteString("No previous conversation")
	} else {
		lines := make([]string, len(history))
		for i, msg := range history {
			lines[i] = msg.Type + ": " + msg.Content
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}

	sb.WriteString("\n\nGuidelines:\n")
	sb.WriteString("- Be helpful, friendly, and professional\n")
	sb.WriteString("- Provide specific, actionable financial advice\n")
	sb.WriteString("- Use the user's actual financial data when available\n")
	sb.WriteString("- Keep responses concise but informative\n")
	sb.WriteString("- Ask clarifying questions when needed\n")
	sb.WriteString("- Never provide investment advice that could be considered financial planning without proper disclaimers\n")
	sb.WriteString("- Always remind users to consult with financial professionals for major decisions\n\n")

	sb.WriteString("User's question: ")
	sb.WriteString(question)
	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func marshalSection(data map[string]any) string {
	if len(data) == 0 {
		return "Not available"
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "Not available"
	}
	return string(encoded)
}
