package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// GroupLockRepository implements group locking functionality using GORM.
// Locks serialize settlement per group so two concurrent round closes cannot
// both read the same pool.
type GroupLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGroupLockRepository creates a new GroupLockRepository instance
func NewGroupLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *GroupLockRepository {
	return &GroupLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock attempts to acquire a settlement lock on the group. The upsert
// only steals an existing lock when it has expired; zero rows affected means
// a live lock is held elsewhere.
func (r *GroupLockRepository) AcquireLock(ctx context.Context, groupID string, duration time.Duration) error {
	r.logger.Debug("Attempting to acquire group lock", map[string]any{
		"group_id": groupID,
		"duration": duration.String(),
	})

	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO group_locks (group_id, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (group_id) DO UPDATE
		SET locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE group_locks.expires_at <= ?`,
		groupID, now, expiresAt, now, now,
		now,
	)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Group is already locked", map[string]any{
				"group_id": groupID,
			})
			return errs.ErrGroupLocked
		}

		if isContextError(result.Error) {
			r.logger.Warn("Context timeout acquiring group lock", map[string]any{
				"group_id": groupID,
				"error":    result.Error.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", result.Error)
		}

		r.logger.Error("Database error acquiring group lock", map[string]any{
			"group_id": groupID,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Group is already locked", map[string]any{
			"group_id": groupID,
		})
		return errs.ErrGroupLocked
	}

	r.logger.Info("Group lock acquired", map[string]any{
		"group_id":   groupID,
		"locked_at":  now,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock releases a previously acquired lock. Releasing a missing or
// expired lock is not an error.
func (r *GroupLockRepository) ReleaseLock(ctx context.Context, groupID string) error {
	r.logger.Debug("Releasing group lock", map[string]any{
		"group_id": groupID,
	})

	var lock model.GroupLock
	findResult := r.db.WithContext(ctx).Where("group_id = ?", groupID).First(&lock)

	if errors.Is(findResult.Error, gorm.ErrRecordNotFound) {
		r.logger.Debug("No group lock found to release", map[string]any{
			"group_id": groupID,
		})
		return nil
	}

	if findResult.Error != nil && !isContextError(findResult.Error) {
		r.logger.Error("Error checking group lock status", map[string]any{
			"group_id": groupID,
			"error":    findResult.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, findResult.Error.Error())
	}

	result := r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&model.GroupLock{})

	// On context timeout the lock expires on its own
	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context timeout releasing group lock, lock will expire automatically", map[string]any{
			"group_id": groupID,
			"error":    result.Error.Error(),
		})
		return nil
	}

	if result.Error != nil {
		r.logger.Error("Failed to release group lock", map[string]any{
			"group_id": groupID,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Group lock released", map[string]any{
			"group_id": groupID,
		})
	}

	return nil
}

// CleanupExpiredLocks removes all expired locks from the database
func (r *GroupLockRepository) CleanupExpiredLocks(ctx context.Context) error {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.GroupLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired group locks", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired group locks cleanup completed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return nil
}
