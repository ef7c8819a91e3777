// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// PointsLedger tracks the per-user point tally awarded for completed
// challenges. The tally is a session-style counter kept outside the record
// store; awards are best effort and are not compensated on failure.
type PointsLedger interface {
	// Award adds points to the user's tally and returns the new total.
	Award(ctx context.Context, userID string, points int64) (int64, error)

	// Total returns the user's current point tally. A user with no tally has zero points.
	Total(ctx context.Context, userID string) (int64, error)

	// Initialize sets the user's tally to the given value only if no tally exists yet.
	Initialize(ctx context.Context, userID string, points int64) error
}
