package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CheckAndSetRateLimit claims the per-account cooldown slot for an action.
// It returns false when the slot is already held. A nil client disables
// limiting entirely.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, accountID uuid.UUID, action string, limit time.Duration) (bool, error) {
	if rdb == nil || limit <= 0 {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:account:%s:%s", accountID.String(), action)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// ClearRateLimit releases a claimed slot, used when the limited action fails
// before doing any work.
func ClearRateLimit(ctx context.Context, rdb *redis.Client, accountID uuid.UUID, action string) error {
	if rdb == nil {
		return nil
	}
	key := fmt.Sprintf("rate_limit:account:%s:%s", accountID.String(), action)
	_, err := rdb.Del(ctx, key).Result()
	return err
}
