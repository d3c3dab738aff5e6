package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func syncLockKey(providerID uuid.UUID) string {
	return fmt.Sprintf("sync:lock:%s", providerID)
}

// AcquireSyncLock takes the per-provider lock. It returns false when another
// pass already holds it. The TTL bounds how long a crashed pass can block the
// provider.
func (r *SyncLockRepo) AcquireSyncLock(ctx context.Context, providerID uuid.UUID) (bool, error) {
	ttl := time.Duration(r.cfg.Sync.LockTTLSeconds) * time.Second
	acquired, err := r.redis.SetNX(ctx, syncLockKey(providerID), time.Now().UTC().Format(time.RFC3339), ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	return acquired, nil
}

// ReleaseSyncLock drops the per-provider lock.
func (r *SyncLockRepo) ReleaseSyncLock(ctx context.Context, providerID uuid.UUID) error {
	if err := r.redis.Delete(ctx, syncLockKey(providerID)); err != nil {
		return fmt.Errorf("failed to release sync lock: %w", err)
	}
	return nil
}
