// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/finance-copilot/backend/internal/application/adapter"
)

// pointsKeyPrefix namespaces ledger keys in Redis.
const pointsKeyPrefix = "points:"

// RedisPointsLedger implements adapter.PointsLedger on a Redis counter.
// The tally is a session-style value: losing it loses display points only,
// never financial records.
type RedisPointsLedger struct {
	client *redis.Client
}

// NewRedisPointsLedger creates a new Redis-backed points ledger.
func NewRedisPointsLedger(client *redis.Client) adapter.PointsLedger {
	return &RedisPointsLedger{
		client: client,
	}
}

// Award adds points to the user's tally and returns the new total.
func (l *RedisPointsLedger) Award(ctx context.Context, userID string, points int64) (int64, error) {
	total, err := l.client.IncrBy(ctx, pointsKey(userID), points).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to award points: %w", err)
	}
	return total, nil
}

// Total returns the user's current point tally. A missing key reads as zero.
func (l *RedisPointsLedger) Total(ctx context.Context, userID string) (int64, error) {
	value, err := l.client.Get(ctx, pointsKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read points: %w", err)
	}

	total, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt points value for user %s: %w", userID, err)
	}
	return total, nil
}

// Initialize sets the user's tally only if no tally exists yet, so repeated
// provisioning attempts never reset earned points.
func (l *RedisPointsLedger) Initialize(ctx context.Context, userID string, points int64) error {
	if err := l.client.SetNX(ctx, pointsKey(userID), points, 0).Err(); err != nil {
		return fmt.Errorf("failed to initialize points: %w", err)
	}
	return nil
}

func pointsKey(userID string) string {
	return pointsKeyPrefix + userID
}
