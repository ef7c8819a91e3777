// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AdviceService defines the boundary to the external text-generation service.
type AdviceService interface {
	// IsAvailable checks if the service is configured and usable.
	IsAvailable() bool

	// GenerateAdvice sends the prompt to the text-generation service and
	// returns the plain-text response.
	GenerateAdvice(ctx context.Context, prompt string) (string, error)
}
