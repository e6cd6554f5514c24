package persistence

import (
	"context"
	"time"
)

// GroupLockRepository serializes settlement per group id. Two concurrent
// nextRound calls for the same group would otherwise race on the
// read-then-write of the aggregate values.
type GroupLockRepository interface {
	// AcquireLock attempts to lock the group for the given duration,
	// ErrGroupLocked if a live lock is already held
	AcquireLock(ctx context.Context, groupID string, duration time.Duration) error

	// ReleaseLock releases a previously acquired lock; releasing a missing or
	// expired lock is not an error
	ReleaseLock(ctx context.Context, groupID string) error

	// CleanupExpiredLocks removes locks whose expiry has passed
	CleanupExpiredLocks(ctx context.Context) error
}
