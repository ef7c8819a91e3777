// Package advice contains the AI financial-advice use case.
package advice

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-copilot/backend/internal/application/adapter"
)

// defaultRequestTimeout bounds the outbound text-generation call. The
// provider client itself specifies no timeout, so one is imposed here.
const defaultRequestTimeout = 30 * time.Second

// RequestAdviceInput represents the input for an advice request.
type RequestAdviceInput struct {
	Message             string
	UserProfile         map[string]any
	DashboardData       map[string]any
	ConversationHistory []ConversationMessage

	// Snapshot, when set, takes precedence over the raw payload maps and
	// produces the structured advisor prompt.
	Snapshot *FinancialSnapshot
}

// RequestAdviceOutput represents the advice produced for a request.
type RequestAdviceOutput struct {
	Response     string
	FromFallback bool
}

// RequestAdviceUseCase forwards a question plus financial context to the
// text-generation service and falls back to a local canned answer on any
// failure. It never returns an error: the advice surface always produces
// best-effort text.
type RequestAdviceUseCase struct {
	adviceService adapter.AdviceService
	timeout       time.Duration
}

// NewRequestAdviceUseCase creates a new RequestAdviceUseCase instance.
func NewRequestAdviceUseCase(adviceService adapter.AdviceService, timeout time.Duration) *RequestAdviceUseCase {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &RequestAdviceUseCase{
		adviceService: adviceService,
		timeout:       timeout,
	}
}

// Execute performs the advice request.
func (uc *RequestAdviceUseCase) Execute(ctx context.Context, input RequestAdviceInput) *RequestAdviceOutput {
	if !uc.adviceService.IsAvailable() {
		return &RequestAdviceOutput{
			Response:     FallbackResponse(input.Message),
			FromFallback: true,
		}
	}

	var prompt string
	if input.Snapshot != nil {
		prompt = BuildSnapshotPrompt(input.Message, *input.Snapshot)
	} else {
		prompt = BuildChatPrompt(input.Message, input.UserProfile, input.DashboardData, input.ConversationHistory)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	response, err := uc.adviceService.GenerateAdvice(ctx, prompt)
	if err != nil {
		slog.Warn("Advice generation failed, serving fallback", "error", err)
		return &RequestAdviceOutput{
			Response:     FallbackResponse(input.Message),
			FromFallback: true,
		}
	}

	return &RequestAdviceOutput{
		Response: response,
	}
}
