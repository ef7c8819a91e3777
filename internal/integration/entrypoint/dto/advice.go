// Package dto defines request and response payloads for the API endpoints.
package dto

import (
	"github.com/finance-copilot/backend/internal/application/usecase/advice"
)

// AdviceRequest represents the body of POST /ai-chat. The profile and
// dashboard payloads are opaque to this service; they are embedded verbatim
// into the model prompt.
type AdviceRequest struct {
	Message             string                       `json:"message"`
	UserProfile         map[string]any               `json:"userProfile"`
	DashboardData       map[string]any               `json:"dashboardData"`
	ConversationHistory []advice.ConversationMessage `json:"conversationHistory"`
}

// AdviceResponse represents the body returned by POST /ai-chat. The endpoint
// always answers with best-effort text, even when the provider failed.
type AdviceResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}
