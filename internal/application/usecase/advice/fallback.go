// Package advice contains the AI financial-advice use case.
package advice

import "strings"

// fallbackPrefix opens every locally generated response when the
// text-generation service could not be reached.
const fallbackPrefix = "I'm currently experiencing technical difficulties, but I'm here to help with your financial questions! "

// fallbackClarification is appended when no keyword matches the question.
const fallbackClarification = "Could you please rephrase your question or ask about budgeting, saving, investing, debt management, or expense reduction?"

// fallbackResponses maps question keywords to canned advice paragraphs. The
// slice order is the match order: the first keyword found in the lowercased
// question wins.
var fallbackResponses = []struct {
	keyword  string
	response string
}{
	{
		keyword:  "budget",
		response: "I'd be happy to help you create a budget! Start by listing your monthly income and fixed expenses like rent, utilities, and loan payments. Then allocate funds for variable expenses like groceries and entertainment. Aim to save at least 10-20% of your income.",
	},
	{
		keyword:  "save",
		response: "Great question about saving! Here are some tips: 1) Automate your savings, 2) Start with an emergency fund of 3-6 months expenses, 3) Take advantage of high-yield savings accounts, 4) Consider the 50/30/20 rule for budgeting.",
	},
	{
		keyword:  "invest",
		response: "Investment advice depends on your goals and risk tolerance. Generally, consider: 1) Diversified index funds for long-term growth, 2) Dollar-cost averaging, 3) Starting early to benefit from compound interest. Always consult with a financial advisor for personalized advice.",
	},
	{
		keyword:  "debt",
		response: "To manage debt effectively: 1) List all debts with interest rates, 2) Pay minimums on all debts, 3) Focus extra payments on highest interest debt first, 4) Consider debt consolidation if beneficial, 5) Avoid taking on new debt while paying off existing debt.",
	},
	{
		keyword:  "expense",
		response: "To reduce expenses: 1) Track all spending for a month, 2) Identify unnecessary subscriptions, 3) Cook more meals at home, 4) Review insurance and utility bills for better rates, 5) Use the 24-hour rule for non-essential purchases.",
	},
}

// FallbackResponse returns the deterministic local answer for a question. It
// scans the lowercased question for the first known keyword and returns the
// matching canned paragraph, or a clarification prompt when nothing matches.
func FallbackResponse(message string) string {
	lowerMessage := strings.ToLower(message)

	for _, entry := range fallbackResponses {
		if strings.Contains(lowerMessage, entry.keyword) {
			return fallbackPrefix + entry.response
		}
	}

	return fallbackPrefix + fallbackClarification
}
