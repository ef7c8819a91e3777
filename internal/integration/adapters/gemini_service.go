// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	domainerror "github.com/finance-copilot/backend/internal/domain/error"
)

// defaultModelName is the Gemini model used when none is configured.
const defaultModelName = "gemini-2.0-flash"

// GeminiService implements the adapter.AdviceService using Google Gemini.
// The underlying client is created once at process start and shared across
// requests; call Close on shutdown.
type GeminiService struct {
	apiKey    string
	modelName string
	client    *genai.Client
}

// NewGeminiService creates a new Gemini service instance. With an empty API
// key the service is constructed but reports itself unavailable, so callers
// degrade to their local fallback.
func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	if modelName == "" {
		modelName = defaultModelName
	}

	service := &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}

	if apiKey == "" {
		return service, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	service.client = client

	return service, nil
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.client != nil
}

// GenerateAdvice sends the prompt to Gemini and returns the plain-text response.
func (s *GeminiService) GenerateAdvice(ctx context.Context, prompt string) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.ErrAdviceUnavailable
	}

	model := s.client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return text, nil
}

// Close releases the underlying client connection.
func (s *GeminiService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("response contained no text parts")
	}

	return sb.String(), nil
}
