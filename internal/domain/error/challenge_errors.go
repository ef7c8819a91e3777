// Package error defines domain-specific errors for the Finance Co-Pilot application.
package error

import "errors"

// Challenge domain errors.
var (
	// ErrChallengeNotFound is returned when a challenge is not found in the system.
	ErrChallengeNotFound = errors.New("challenge not found")

	// ErrInvalidTargetDays is returned when the target day count is invalid (zero or negative).
	ErrInvalidTargetDays = errors.New("invalid target days")
)

// ChallengeErrorCode defines error codes for challenge errors.
// Format: CHL-XXYYYY where XX is category and YYYY is specific error.
type ChallengeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeChallengeNotFound      ChallengeErrorCode = "CHL-010001"
	ErrCodeInvalidTargetDays      ChallengeErrorCode = "CHL-010002"
	ErrCodeMissingChallengeFields ChallengeErrorCode = "CHL-010003"

	// Infrastructure errors (02XXXX)
	ErrCodeChallengeUpdateFailed ChallengeErrorCode = "CHL-020001"
)

// ChallengeError represents a challenge error with code and message.
type ChallengeError struct {
	Code    ChallengeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChallengeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChallengeError) Unwrap() error {
	return e.Err
}

// NewChallengeError creates a new ChallengeError with the given code and message.
func NewChallengeError(code ChallengeErrorCode, message string, err error) *ChallengeError {
	return &ChallengeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
