package persistence

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
)

// AggregateRepository defines persistence operations for a group's running
// totals. Rows are created lazily by the first applyNEuro call.
type AggregateRepository interface {
	// GetByGroup retrieves a group's aggregate values,
	// ErrAggregateNotFound if none exist yet
	GetByGroup(ctx context.Context, groupID string) (*entity.AggregateValues, error)

	// Create inserts the lazily-created aggregate row for a group
	Create(ctx context.Context, values *entity.AggregateValues) error

	// Update rewrites the totals
	Update(ctx context.Context, values *entity.AggregateValues) error

	// DeleteByGroup removes a group's aggregate values
	DeleteByGroup(ctx context.Context, groupID string) error
}
