// Package error defines domain-specific errors for the Finance Co-Pilot application.
package error

import "errors"

// ErrAdviceUnavailable is returned when the text-generation service is not configured.
var ErrAdviceUnavailable = errors.New("advice service unavailable")

// AdviceErrorCode defines error codes for advice errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdviceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyMessage AdviceErrorCode = "ADV-010001"

	// Infrastructure errors (02XXXX)
	ErrCodeRateLimited AdviceErrorCode = "ADV-020002"
)
