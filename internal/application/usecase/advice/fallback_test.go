package advice

import (
	"strings"
	"testing"
)

func TestFallbackResponse(t *testing.T) {
	tests := []struct {
		name          string
		message       string
		wantSubstring string
	}{
		{
			name:          "save question returns the saving tips",
			message:       "How can I save more?",
			wantSubstring: "Great question about saving!",
		},
		{
			name:          "budget question returns the budgeting answer",
			message:       "Help me set up a BUDGET please",
			wantSubstring: "I'd be happy to help you create a budget!",
		},
		{
			name:          "invest question returns the investing answer",
			message:       "where should i invest my bonus",
			wantSubstring: "Investment advice depends on your goals",
		},
		{
			name:          "debt question returns the debt answer",
			message:       "I'm drowning in debt",
			wantSubstring: "To manage debt effectively",
		},
		{
			name:          "expense question returns the expense answer",
			message:       "my expenses are out of control",
			wantSubstring: "To reduce expenses",
		},
		{
			name:          "unrecognized question returns the clarification prompt",
			message:       "asdf",
			wantSubstring: "Could you please rephrase your question",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackResponse(tt.message)

			if !strings.HasPrefix(got, fallbackPrefix) {
				t.Errorf("expected fallback to start with the technical-difficulties prefix, got %q", got)
			}
			if !strings.Contains(got, tt.wantSubstring) {
				t.Errorf("expected fallback to contain %q, got %q", tt.wantSubstring, got)
			}
		})
	}
}

func TestFallbackResponseKeywordOrder(t *testing.T) {
	// When several keywords appear, the first keyword in table order wins.
	got := FallbackResponse("should I budget first or save first?")

	if !strings.Contains(got, "I'd be happy to help you create a budget!") {
		t.Errorf("expected budget response to win over save, got %q", got)
	}
	if strings.Contains(got, "Great question about saving!") {
		t.Errorf("expected only one canned response, got %q", got)
	}
}
