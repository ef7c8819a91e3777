// Package error defines domain-specific errors for the Finance Co-Pilot application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrUserNotFound is returned when no user row exists for the given id.
	// Callers treat this as a provisioning trigger, not a failure.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound is returned when a user has no financial profile.
	ErrProfileNotFound = errors.New("profile not found")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

// Infrastructure errors (02XXXX)
const (
	ErrCodeSnapshotFailed     DashboardErrorCode = "DSH-020001"
	ErrCodeProvisioningFailed DashboardErrorCode = "DSH-020002"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
